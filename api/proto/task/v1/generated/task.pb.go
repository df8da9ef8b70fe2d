// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.8
// 	protoc        (unknown)
// source: task/v1/task.proto

package taskv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	emptypb "google.golang.org/protobuf/types/known/emptypb"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type TaskStatus int32

const (
	TaskStatus_TASK_STATUS_UNSPECIFIED TaskStatus = 0
	TaskStatus_TASK_STATUS_ACTIVE      TaskStatus = 1
	TaskStatus_TASK_STATUS_COMPLETED   TaskStatus = 2
	TaskStatus_TASK_STATUS_ARCHIVED    TaskStatus = 3
)

// Enum value maps for TaskStatus.
var (
	TaskStatus_name = map[int32]string{
		0: "TASK_STATUS_UNSPECIFIED",
		1: "TASK_STATUS_ACTIVE",
		2: "TASK_STATUS_COMPLETED",
		3: "TASK_STATUS_ARCHIVED",
	}
	TaskStatus_value = map[string]int32{
		"TASK_STATUS_UNSPECIFIED": 0,
		"TASK_STATUS_ACTIVE":      1,
		"TASK_STATUS_COMPLETED":   2,
		"TASK_STATUS_ARCHIVED":    3,
	}
)

func (x TaskStatus) Enum() *TaskStatus {
	p := new(TaskStatus)
	*p = x
	return p
}

func (x TaskStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (TaskStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_task_v1_task_proto_enumTypes[0].Descriptor()
}

func (TaskStatus) Type() protoreflect.EnumType {
	return &file_task_v1_task_proto_enumTypes[0]
}

func (x TaskStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use TaskStatus.Descriptor instead.
func (TaskStatus) EnumDescriptor() ([]byte, []int) {
	return file_task_v1_task_proto_rawDescGZIP(), []int{0}
}

type Priority int32

const (
	Priority_PRIORITY_UNSPECIFIED Priority = 0
	Priority_PRIORITY_LOW         Priority = 1
	Priority_PRIORITY_MEDIUM      Priority = 2
	Priority_PRIORITY_HIGH        Priority = 3
	Priority_PRIORITY_URGENT      Priority = 4
)

// Enum value maps for Priority.
var (
	Priority_name = map[int32]string{
		0: "PRIORITY_UNSPECIFIED",
		1: "PRIORITY_LOW",
		2: "PRIORITY_MEDIUM",
		3: "PRIORITY_HIGH",
		4: "PRIORITY_URGENT",
	}
	Priority_value = map[string]int32{
		"PRIORITY_UNSPECIFIED": 0,
		"PRIORITY_LOW":         1,
		"PRIORITY_MEDIUM":      2,
		"PRIORITY_HIGH":        3,
		"PRIORITY_URGENT":      4,
	}
)

func (x Priority) Enum() *Priority {
	p := new(Priority)
	*p = x
	return p
}

func (x Priority) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (Priority) Descriptor() protoreflect.EnumDescriptor {
	return file_task_v1_task_proto_enumTypes[1].Descriptor()
}

func (Priority) Type() protoreflect.EnumType {
	return &file_task_v1_task_proto_enumTypes[1]
}

func (x Priority) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use Priority.Descriptor instead.
func (Priority) EnumDescriptor() ([]byte, []int) {
	return file_task_v1_task_proto_rawDescGZIP(), []int{1}
}

// FilterBucket names the classification a list request selects.
type FilterBucket int32

const (
	FilterBucket_FILTER_BUCKET_UNSPECIFIED FilterBucket = 0
	FilterBucket_FILTER_BUCKET_ALL         FilterBucket = 1
	FilterBucket_FILTER_BUCKET_TODAY       FilterBucket = 2
	FilterBucket_FILTER_BUCKET_OVERDUE     FilterBucket = 3
	FilterBucket_FILTER_BUCKET_UPCOMING    FilterBucket = 4
	FilterBucket_FILTER_BUCKET_NO_DUE_DATE FilterBucket = 5
	FilterBucket_FILTER_BUCKET_FOCUS       FilterBucket = 6
)

// Enum value maps for FilterBucket.
var (
	FilterBucket_name = map[int32]string{
		0: "FILTER_BUCKET_UNSPECIFIED",
		1: "FILTER_BUCKET_ALL",
		2: "FILTER_BUCKET_TODAY",
		3: "FILTER_BUCKET_OVERDUE",
		4: "FILTER_BUCKET_UPCOMING",
		5: "FILTER_BUCKET_NO_DUE_DATE",
		6: "FILTER_BUCKET_FOCUS",
	}
	FilterBucket_value = map[string]int32{
		"FILTER_BUCKET_UNSPECIFIED": 0,
		"FILTER_BUCKET_ALL":         1,
		"FILTER_BUCKET_TODAY":       2,
		"FILTER_BUCKET_OVERDUE":     3,
		"FILTER_BUCKET_UPCOMING":    4,
		"FILTER_BUCKET_NO_DUE_DATE": 5,
		"FILTER_BUCKET_FOCUS":       6,
	}
)

func (x FilterBucket) Enum() *FilterBucket {
	p := new(FilterBucket)
	*p = x
	return p
}

func (x FilterBucket) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (FilterBucket) Descriptor() protoreflect.EnumDescriptor {
	return file_task_v1_task_proto_enumTypes[2].Descriptor()
}

func (FilterBucket) Type() protoreflect.EnumType {
	return &file_task_v1_task_proto_enumTypes[2]
}

func (x FilterBucket) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use FilterBucket.Descriptor instead.
func (FilterBucket) EnumDescriptor() ([]byte, []int) {
	return file_task_v1_task_proto_rawDescGZIP(), []int{2}
}

type Task struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Title         string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Status        TaskStatus             `protobuf:"varint,4,opt,name=status,proto3,enum=task.v1.TaskStatus" json:"status,omitempty"`
	Priority      Priority               `protobuf:"varint,5,opt,name=priority,proto3,enum=task.v1.Priority" json:"priority,omitempty"`
	DueDate       *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=due_date,json=dueDate,proto3" json:"due_date,omitempty"`
	CompletedAt   *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=completed_at,json=completedAt,proto3" json:"completed_at,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Task) Reset() {
	*x = Task{}
	mi := &file_task_v1_task_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Task) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Task) ProtoMessage() {}

func (x *Task) ProtoReflect() protoreflect.Message {
	mi := &file_task_v1_task_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Task.ProtoReflect.Descriptor instead.
func (*Task) Descriptor() ([]byte, []int) {
	return file_task_v1_task_proto_rawDescGZIP(), []int{0}
}

func (x *Task) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Task) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Task) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Task) GetStatus() TaskStatus {
	if x != nil {
		return x.Status
	}
	return TaskStatus_TASK_STATUS_UNSPECIFIED
}

func (x *Task) GetPriority() Priority {
	if x != nil {
		return x.Priority
	}
	return Priority_PRIORITY_UNSPECIFIED
}

func (x *Task) GetDueDate() *timestamppb.Timestamp {
	if x != nil {
		return x.DueDate
	}
	return nil
}

func (x *Task) GetCompletedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CompletedAt
	}
	return nil
}

func (x *Task) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Task) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type CreateTaskRequest struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	Title       string                 `protobuf:"bytes,1,opt,name=title,proto3" json:"title,omitempty"`
	Description string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	Priority    Priority               `protobuf:"varint,3,opt,name=priority,proto3,enum=task.v1.Priority" json:"priority,omitempty"`
	// Calendar date in strict YYYY-MM-DD form; converted to local
	// midnight in the user's timezone. Empty means no due date.
	DueDate       string `protobuf:"bytes,4,opt,name=due_date,json=dueDate,proto3" json:"due_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateTaskRequest) Reset() {
	*x = CreateTaskRequest{}
	mi := &file_task_v1_task_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateTaskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateTaskRequest) ProtoMessage() {}

func (x *CreateTaskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_task_v1_task_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateTaskRequest.ProtoReflect.Descriptor instead.
func (*CreateTaskRequest) Descriptor() ([]byte, []int) {
	return file_task_v1_task_proto_rawDescGZIP(), []int{1}
}

func (x *CreateTaskRequest) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *CreateTaskRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *CreateTaskRequest) GetPriority() Priority {
	if x != nil {
		return x.Priority
	}
	return Priority_PRIORITY_UNSPECIFIED
}

func (x *CreateTaskRequest) GetDueDate() string {
	if x != nil {
		return x.DueDate
	}
	return ""
}

type CreateTaskResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Task          *Task                  `protobuf:"bytes,1,opt,name=task,proto3" json:"task,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateTaskResponse) Reset() {
	*x = CreateTaskResponse{}
	mi := &file_task_v1_task_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateTaskResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateTaskResponse) ProtoMessage() {}

func (x *CreateTaskResponse) ProtoReflect() protoreflect.Message {
	mi := &file_task_v1_task_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateTaskResponse.ProtoReflect.Descriptor instead.
func (*CreateTaskResponse) Descriptor() ([]byte, []int) {
	return file_task_v1_task_proto_rawDescGZIP(), []int{2}
}

func (x *CreateTaskResponse) GetTask() *Task {
	if x != nil {
		return x.Task
	}
	return nil
}

type GetTaskRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTaskRequest) Reset() {
	*x = GetTaskRequest{}
	mi := &file_task_v1_task_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTaskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTaskRequest) ProtoMessage() {}

func (x *GetTaskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_task_v1_task_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTaskRequest.ProtoReflect.Descriptor instead.
func (*GetTaskRequest) Descriptor() ([]byte, []int) {
	return file_task_v1_task_proto_rawDescGZIP(), []int{3}
}

func (x *GetTaskRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetTaskResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Task          *Task                  `protobuf:"bytes,1,opt,name=task,proto3" json:"task,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTaskResponse) Reset() {
	*x = GetTaskResponse{}
	mi := &file_task_v1_task_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTaskResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTaskResponse) ProtoMessage() {}

func (x *GetTaskResponse) ProtoReflect() protoreflect.Message {
	mi := &file_task_v1_task_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTaskResponse.ProtoReflect.Descriptor instead.
func (*GetTaskResponse) Descriptor() ([]byte, []int) {
	return file_task_v1_task_proto_rawDescGZIP(), []int{4}
}

func (x *GetTaskResponse) GetTask() *Task {
	if x != nil {
		return x.Task
	}
	return nil
}

type UpdateTaskRequest struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	Id          string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Title       string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Description string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Priority    Priority               `protobuf:"varint,4,opt,name=priority,proto3,enum=task.v1.Priority" json:"priority,omitempty"`
	// YYYY-MM-DD; ignored when clear_due_date is set.
	DueDate       string `protobuf:"bytes,5,opt,name=due_date,json=dueDate,proto3" json:"due_date,omitempty"`
	ClearDueDate  bool   `protobuf:"varint,6,opt,name=clear_due_date,json=clearDueDate,proto3" json:"clear_due_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateTaskRequest) Reset() {
	*x = UpdateTaskRequest{}
	mi := &file_task_v1_task_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateTaskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateTaskRequest) ProtoMessage() {}

func (x *UpdateTaskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_task_v1_task_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateTaskRequest.ProtoReflect.Descriptor instead.
func (*UpdateTaskRequest) Descriptor() ([]byte, []int) {
	return file_task_v1_task_proto_rawDescGZIP(), []int{5}
}

func (x *UpdateTaskRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdateTaskRequest) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *UpdateTaskRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *UpdateTaskRequest) GetPriority() Priority {
	if x != nil {
		return x.Priority
	}
	return Priority_PRIORITY_UNSPECIFIED
}

func (x *UpdateTaskRequest) GetDueDate() string {
	if x != nil {
		return x.DueDate
	}
	return ""
}

func (x *UpdateTaskRequest) GetClearDueDate() bool {
	if x != nil {
		return x.ClearDueDate
	}
	return false
}

type UpdateTaskResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Task          *Task                  `protobuf:"bytes,1,opt,name=task,proto3" json:"task,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateTaskResponse) Reset() {
	*x = UpdateTaskResponse{}
	mi := &file_task_v1_task_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateTaskResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateTaskResponse) ProtoMessage() {}

func (x *UpdateTaskResponse) ProtoReflect() protoreflect.Message {
	mi := &file_task_v1_task_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateTaskResponse.ProtoReflect.Descriptor instead.
func (*UpdateTaskResponse) Descriptor() ([]byte, []int) {
	return file_task_v1_task_proto_rawDescGZIP(), []int{6}
}

func (x *UpdateTaskResponse) GetTask() *Task {
	if x != nil {
		return x.Task
	}
	return nil
}

type CompleteTaskRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompleteTaskRequest) Reset() {
	*x = CompleteTaskRequest{}
	mi := &file_task_v1_task_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompleteTaskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompleteTaskRequest) ProtoMessage() {}

func (x *CompleteTaskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_task_v1_task_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompleteTaskRequest.ProtoReflect.Descriptor instead.
func (*CompleteTaskRequest) Descriptor() ([]byte, []int) {
	return file_task_v1_task_proto_rawDescGZIP(), []int{7}
}

func (x *CompleteTaskRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type CompleteTaskResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Task          *Task                  `protobuf:"bytes,1,opt,name=task,proto3" json:"task,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompleteTaskResponse) Reset() {
	*x = CompleteTaskResponse{}
	mi := &file_task_v1_task_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompleteTaskResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompleteTaskResponse) ProtoMessage() {}

func (x *CompleteTaskResponse) ProtoReflect() protoreflect.Message {
	mi := &file_task_v1_task_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompleteTaskResponse.ProtoReflect.Descriptor instead.
func (*CompleteTaskResponse) Descriptor() ([]byte, []int) {
	return file_task_v1_task_proto_rawDescGZIP(), []int{8}
}

func (x *CompleteTaskResponse) GetTask() *Task {
	if x != nil {
		return x.Task
	}
	return nil
}

type ReopenTaskRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReopenTaskRequest) Reset() {
	*x = ReopenTaskRequest{}
	mi := &file_task_v1_task_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReopenTaskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReopenTaskRequest) ProtoMessage() {}

func (x *ReopenTaskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_task_v1_task_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReopenTaskRequest.ProtoReflect.Descriptor instead.
func (*ReopenTaskRequest) Descriptor() ([]byte, []int) {
	return file_task_v1_task_proto_rawDescGZIP(), []int{9}
}

func (x *ReopenTaskRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type ReopenTaskResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Task          *Task                  `protobuf:"bytes,1,opt,name=task,proto3" json:"task,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReopenTaskResponse) Reset() {
	*x = ReopenTaskResponse{}
	mi := &file_task_v1_task_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReopenTaskResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReopenTaskResponse) ProtoMessage() {}

func (x *ReopenTaskResponse) ProtoReflect() protoreflect.Message {
	mi := &file_task_v1_task_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReopenTaskResponse.ProtoReflect.Descriptor instead.
func (*ReopenTaskResponse) Descriptor() ([]byte, []int) {
	return file_task_v1_task_proto_rawDescGZIP(), []int{10}
}

func (x *ReopenTaskResponse) GetTask() *Task {
	if x != nil {
		return x.Task
	}
	return nil
}

type ArchiveTaskRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ArchiveTaskRequest) Reset() {
	*x = ArchiveTaskRequest{}
	mi := &file_task_v1_task_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ArchiveTaskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ArchiveTaskRequest) ProtoMessage() {}

func (x *ArchiveTaskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_task_v1_task_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ArchiveTaskRequest.ProtoReflect.Descriptor instead.
func (*ArchiveTaskRequest) Descriptor() ([]byte, []int) {
	return file_task_v1_task_proto_rawDescGZIP(), []int{11}
}

func (x *ArchiveTaskRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type ArchiveTaskResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Task          *Task                  `protobuf:"bytes,1,opt,name=task,proto3" json:"task,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ArchiveTaskResponse) Reset() {
	*x = ArchiveTaskResponse{}
	mi := &file_task_v1_task_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ArchiveTaskResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ArchiveTaskResponse) ProtoMessage() {}

func (x *ArchiveTaskResponse) ProtoReflect() protoreflect.Message {
	mi := &file_task_v1_task_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ArchiveTaskResponse.ProtoReflect.Descriptor instead.
func (*ArchiveTaskResponse) Descriptor() ([]byte, []int) {
	return file_task_v1_task_proto_rawDescGZIP(), []int{12}
}

func (x *ArchiveTaskResponse) GetTask() *Task {
	if x != nil {
		return x.Task
	}
	return nil
}

type DeleteTaskRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteTaskRequest) Reset() {
	*x = DeleteTaskRequest{}
	mi := &file_task_v1_task_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteTaskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteTaskRequest) ProtoMessage() {}

func (x *DeleteTaskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_task_v1_task_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteTaskRequest.ProtoReflect.Descriptor instead.
func (*DeleteTaskRequest) Descriptor() ([]byte, []int) {
	return file_task_v1_task_proto_rawDescGZIP(), []int{13}
}

func (x *DeleteTaskRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type ListTasksRequest struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	Bucket FilterBucket           `protobuf:"varint,1,opt,name=bucket,proto3,enum=task.v1.FilterBucket" json:"bucket,omitempty"`
	// Also return completed tasks finished within this many days.
	IncludeCompletedDays int32 `protobuf:"varint,2,opt,name=include_completed_days,json=includeCompletedDays,proto3" json:"include_completed_days,omitempty"`
	PageSize             int32 `protobuf:"varint,3,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	Offset               int32 `protobuf:"varint,4,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *ListTasksRequest) Reset() {
	*x = ListTasksRequest{}
	mi := &file_task_v1_task_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTasksRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTasksRequest) ProtoMessage() {}

func (x *ListTasksRequest) ProtoReflect() protoreflect.Message {
	mi := &file_task_v1_task_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTasksRequest.ProtoReflect.Descriptor instead.
func (*ListTasksRequest) Descriptor() ([]byte, []int) {
	return file_task_v1_task_proto_rawDescGZIP(), []int{14}
}

func (x *ListTasksRequest) GetBucket() FilterBucket {
	if x != nil {
		return x.Bucket
	}
	return FilterBucket_FILTER_BUCKET_UNSPECIFIED
}

func (x *ListTasksRequest) GetIncludeCompletedDays() int32 {
	if x != nil {
		return x.IncludeCompletedDays
	}
	return 0
}

func (x *ListTasksRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListTasksRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListTasksResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Tasks []*Task                `protobuf:"bytes,1,rep,name=tasks,proto3" json:"tasks,omitempty"`
	// Total for the same filter, matching an unpaginated run.
	TotalCount    int32 `protobuf:"varint,2,opt,name=total_count,json=totalCount,proto3" json:"total_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTasksResponse) Reset() {
	*x = ListTasksResponse{}
	mi := &file_task_v1_task_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTasksResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTasksResponse) ProtoMessage() {}

func (x *ListTasksResponse) ProtoReflect() protoreflect.Message {
	mi := &file_task_v1_task_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTasksResponse.ProtoReflect.Descriptor instead.
func (*ListTasksResponse) Descriptor() ([]byte, []int) {
	return file_task_v1_task_proto_rawDescGZIP(), []int{15}
}

func (x *ListTasksResponse) GetTasks() []*Task {
	if x != nil {
		return x.Tasks
	}
	return nil
}

func (x *ListTasksResponse) GetTotalCount() int32 {
	if x != nil {
		return x.TotalCount
	}
	return 0
}

type GetFilterCountsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFilterCountsRequest) Reset() {
	*x = GetFilterCountsRequest{}
	mi := &file_task_v1_task_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFilterCountsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFilterCountsRequest) ProtoMessage() {}

func (x *GetFilterCountsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_task_v1_task_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFilterCountsRequest.ProtoReflect.Descriptor instead.
func (*GetFilterCountsRequest) Descriptor() ([]byte, []int) {
	return file_task_v1_task_proto_rawDescGZIP(), []int{16}
}

type GetFilterCountsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	All           int32                  `protobuf:"varint,1,opt,name=all,proto3" json:"all,omitempty"`
	Today         int32                  `protobuf:"varint,2,opt,name=today,proto3" json:"today,omitempty"`
	Overdue       int32                  `protobuf:"varint,3,opt,name=overdue,proto3" json:"overdue,omitempty"`
	Upcoming      int32                  `protobuf:"varint,4,opt,name=upcoming,proto3" json:"upcoming,omitempty"`
	NoDueDate     int32                  `protobuf:"varint,5,opt,name=no_due_date,json=noDueDate,proto3" json:"no_due_date,omitempty"`
	Focus         int32                  `protobuf:"varint,6,opt,name=focus,proto3" json:"focus,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFilterCountsResponse) Reset() {
	*x = GetFilterCountsResponse{}
	mi := &file_task_v1_task_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFilterCountsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFilterCountsResponse) ProtoMessage() {}

func (x *GetFilterCountsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_task_v1_task_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFilterCountsResponse.ProtoReflect.Descriptor instead.
func (*GetFilterCountsResponse) Descriptor() ([]byte, []int) {
	return file_task_v1_task_proto_rawDescGZIP(), []int{17}
}

func (x *GetFilterCountsResponse) GetAll() int32 {
	if x != nil {
		return x.All
	}
	return 0
}

func (x *GetFilterCountsResponse) GetToday() int32 {
	if x != nil {
		return x.Today
	}
	return 0
}

func (x *GetFilterCountsResponse) GetOverdue() int32 {
	if x != nil {
		return x.Overdue
	}
	return 0
}

func (x *GetFilterCountsResponse) GetUpcoming() int32 {
	if x != nil {
		return x.Upcoming
	}
	return 0
}

func (x *GetFilterCountsResponse) GetNoDueDate() int32 {
	if x != nil {
		return x.NoDueDate
	}
	return 0
}

func (x *GetFilterCountsResponse) GetFocus() int32 {
	if x != nil {
		return x.Focus
	}
	return 0
}

type GetPreferencesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPreferencesRequest) Reset() {
	*x = GetPreferencesRequest{}
	mi := &file_task_v1_task_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPreferencesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPreferencesRequest) ProtoMessage() {}

func (x *GetPreferencesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_task_v1_task_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPreferencesRequest.ProtoReflect.Descriptor instead.
func (*GetPreferencesRequest) Descriptor() ([]byte, []int) {
	return file_task_v1_task_proto_rawDescGZIP(), []int{18}
}

type UpdatePreferencesRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// IANA zone identifier, e.g. "America/New_York".
	Timezone               *string `protobuf:"bytes,1,opt,name=timezone,proto3,oneof" json:"timezone,omitempty"`
	CompletedRetentionDays *int32  `protobuf:"varint,2,opt,name=completed_retention_days,json=completedRetentionDays,proto3,oneof" json:"completed_retention_days,omitempty"`
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *UpdatePreferencesRequest) Reset() {
	*x = UpdatePreferencesRequest{}
	mi := &file_task_v1_task_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdatePreferencesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdatePreferencesRequest) ProtoMessage() {}

func (x *UpdatePreferencesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_task_v1_task_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdatePreferencesRequest.ProtoReflect.Descriptor instead.
func (*UpdatePreferencesRequest) Descriptor() ([]byte, []int) {
	return file_task_v1_task_proto_rawDescGZIP(), []int{19}
}

func (x *UpdatePreferencesRequest) GetTimezone() string {
	if x != nil && x.Timezone != nil {
		return *x.Timezone
	}
	return ""
}

func (x *UpdatePreferencesRequest) GetCompletedRetentionDays() int32 {
	if x != nil && x.CompletedRetentionDays != nil {
		return *x.CompletedRetentionDays
	}
	return 0
}

type PreferencesResponse struct {
	state                  protoimpl.MessageState `protogen:"open.v1"`
	Timezone               string                 `protobuf:"bytes,1,opt,name=timezone,proto3" json:"timezone,omitempty"`
	CompletedRetentionDays int32                  `protobuf:"varint,2,opt,name=completed_retention_days,json=completedRetentionDays,proto3" json:"completed_retention_days,omitempty"`
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *PreferencesResponse) Reset() {
	*x = PreferencesResponse{}
	mi := &file_task_v1_task_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PreferencesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PreferencesResponse) ProtoMessage() {}

func (x *PreferencesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_task_v1_task_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PreferencesResponse.ProtoReflect.Descriptor instead.
func (*PreferencesResponse) Descriptor() ([]byte, []int) {
	return file_task_v1_task_proto_rawDescGZIP(), []int{20}
}

func (x *PreferencesResponse) GetTimezone() string {
	if x != nil {
		return x.Timezone
	}
	return ""
}

func (x *PreferencesResponse) GetCompletedRetentionDays() int32 {
	if x != nil {
		return x.CompletedRetentionDays
	}
	return 0
}

var File_task_v1_task_proto protoreflect.FileDescriptor

const file_task_v1_task_proto_rawDesc = "" +
	"\n" +
	"\x12task/v1/task.proto\x12\atask.v1\x1a\x1bgoogle/protobuf/empty.proto\x1a\x1fgoogle/protobuf/timestamp.proto\"\x96\x03\n" +
	"\x04Task\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12+\n" +
	"\x06status\x18\x04 \x01(\x0e2\x13.task.v1.TaskStatusR\x06status\x12-\n" +
	"\bpriority\x18\x05 \x01(\x0e2\x11.task.v1.PriorityR\bpriority\x125\n" +
	"\bdue_date\x18\x06 \x01(\v2\x1a.google.protobuf.TimestampR\adueDate\x12=\n" +
	"\fcompleted_at\x18\a \x01(\v2\x1a.google.protobuf.TimestampR\vcompletedAt\x129\n" +
	"\n" +
	"created_at\x18\b \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\t \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\"\x95\x01\n" +
	"\x11CreateTaskRequest\x12\x14\n" +
	"\x05title\x18\x01 \x01(\tR\x05title\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12-\n" +
	"\bpriority\x18\x03 \x01(\x0e2\x11.task.v1.PriorityR\bpriority\x12\x19\n" +
	"\bdue_date\x18\x04 \x01(\tR\adueDate\"7\n" +
	"\x12CreateTaskResponse\x12!\n" +
	"\x04task\x18\x01 \x01(\v2\r.task.v1.TaskR\x04task\" \n" +
	"\x0eGetTaskRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"4\n" +
	"\x0fGetTaskResponse\x12!\n" +
	"\x04task\x18\x01 \x01(\v2\r.task.v1.TaskR\x04task\"\xcb\x01\n" +
	"\x11UpdateTaskRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12-\n" +
	"\bpriority\x18\x04 \x01(\x0e2\x11.task.v1.PriorityR\bpriority\x12\x19\n" +
	"\bdue_date\x18\x05 \x01(\tR\adueDate\x12$\n" +
	"\x0eclear_due_date\x18\x06 \x01(\bR\fclearDueDate\"7\n" +
	"\x12UpdateTaskResponse\x12!\n" +
	"\x04task\x18\x01 \x01(\v2\r.task.v1.TaskR\x04task\"%\n" +
	"\x13CompleteTaskRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"9\n" +
	"\x14CompleteTaskResponse\x12!\n" +
	"\x04task\x18\x01 \x01(\v2\r.task.v1.TaskR\x04task\"#\n" +
	"\x11ReopenTaskRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"7\n" +
	"\x12ReopenTaskResponse\x12!\n" +
	"\x04task\x18\x01 \x01(\v2\r.task.v1.TaskR\x04task\"$\n" +
	"\x12ArchiveTaskRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"8\n" +
	"\x13ArchiveTaskResponse\x12!\n" +
	"\x04task\x18\x01 \x01(\v2\r.task.v1.TaskR\x04task\"#\n" +
	"\x11DeleteTaskRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\xac\x01\n" +
	"\x10ListTasksRequest\x12-\n" +
	"\x06bucket\x18\x01 \x01(\x0e2\x15.task.v1.FilterBucketR\x06bucket\x124\n" +
	"\x16include_completed_days\x18\x02 \x01(\x05R\x14includeCompletedDays\x12\x1b\n" +
	"\tpage_size\x18\x03 \x01(\x05R\bpageSize\x12\x16\n" +
	"\x06offset\x18\x04 \x01(\x05R\x06offset\"Y\n" +
	"\x11ListTasksResponse\x12#\n" +
	"\x05tasks\x18\x01 \x03(\v2\r.task.v1.TaskR\x05tasks\x12\x1f\n" +
	"\vtotal_count\x18\x02 \x01(\x05R\n" +
	"totalCount\"\x18\n" +
	"\x16GetFilterCountsRequest\"\xad\x01\n" +
	"\x17GetFilterCountsResponse\x12\x10\n" +
	"\x03all\x18\x01 \x01(\x05R\x03all\x12\x14\n" +
	"\x05today\x18\x02 \x01(\x05R\x05today\x12\x18\n" +
	"\aoverdue\x18\x03 \x01(\x05R\aoverdue\x12\x1a\n" +
	"\bupcoming\x18\x04 \x01(\x05R\bupcoming\x12\x1e\n" +
	"\vno_due_date\x18\x05 \x01(\x05R\tnoDueDate\x12\x14\n" +
	"\x05focus\x18\x06 \x01(\x05R\x05focus\"\x17\n" +
	"\x15GetPreferencesRequest\"\xa4\x01\n" +
	"\x18UpdatePreferencesRequest\x12\x1f\n" +
	"\btimezone\x18\x01 \x01(\tH\x00R\btimezone\x88\x01\x01\x12=\n" +
	"\x18completed_retention_days\x18\x02 \x01(\x05H\x01R\x16completedRetentionDays\x88\x01\x01B\v\n" +
	"\t_timezoneB\x1b\n" +
	"\x19_completed_retention_days\"k\n" +
	"\x13PreferencesResponse\x12\x1a\n" +
	"\btimezone\x18\x01 \x01(\tR\btimezone\x128\n" +
	"\x18completed_retention_days\x18\x02 \x01(\x05R\x16completedRetentionDays*v\n" +
	"\n" +
	"TaskStatus\x12\x1b\n" +
	"\x17TASK_STATUS_UNSPECIFIED\x10\x00\x12\x16\n" +
	"\x12TASK_STATUS_ACTIVE\x10\x01\x12\x19\n" +
	"\x15TASK_STATUS_COMPLETED\x10\x02\x12\x18\n" +
	"\x14TASK_STATUS_ARCHIVED\x10\x03*s\n" +
	"\bPriority\x12\x18\n" +
	"\x14PRIORITY_UNSPECIFIED\x10\x00\x12\x10\n" +
	"\fPRIORITY_LOW\x10\x01\x12\x13\n" +
	"\x0fPRIORITY_MEDIUM\x10\x02\x12\x11\n" +
	"\rPRIORITY_HIGH\x10\x03\x12\x13\n" +
	"\x0fPRIORITY_URGENT\x10\x04*\xcc\x01\n" +
	"\fFilterBucket\x12\x1d\n" +
	"\x19FILTER_BUCKET_UNSPECIFIED\x10\x00\x12\x15\n" +
	"\x11FILTER_BUCKET_ALL\x10\x01\x12\x17\n" +
	"\x13FILTER_BUCKET_TODAY\x10\x02\x12\x19\n" +
	"\x15FILTER_BUCKET_OVERDUE\x10\x03\x12\x1a\n" +
	"\x16FILTER_BUCKET_UPCOMING\x10\x04\x12\x1d\n" +
	"\x19FILTER_BUCKET_NO_DUE_DATE\x10\x05\x12\x17\n" +
	"\x13FILTER_BUCKET_FOCUS\x10\x062\x93\x05\n" +
	"\vTaskService\x12E\n" +
	"\n" +
	"CreateTask\x12\x1a.task.v1.CreateTaskRequest\x1a\x1b.task.v1.CreateTaskResponse\x12<\n" +
	"\aGetTask\x12\x17.task.v1.GetTaskRequest\x1a\x18.task.v1.GetTaskResponse\x12E\n" +
	"\n" +
	"UpdateTask\x12\x1a.task.v1.UpdateTaskRequest\x1a\x1b.task.v1.UpdateTaskResponse\x12K\n" +
	"\fCompleteTask\x12\x1c.task.v1.CompleteTaskRequest\x1a\x1d.task.v1.CompleteTaskResponse\x12E\n" +
	"\n" +
	"ReopenTask\x12\x1a.task.v1.ReopenTaskRequest\x1a\x1b.task.v1.ReopenTaskResponse\x12H\n" +
	"\vArchiveTask\x12\x1b.task.v1.ArchiveTaskRequest\x1a\x1c.task.v1.ArchiveTaskResponse\x12@\n" +
	"\n" +
	"DeleteTask\x12\x1a.task.v1.DeleteTaskRequest\x1a\x16.google.protobuf.Empty\x12B\n" +
	"\tListTasks\x12\x19.task.v1.ListTasksRequest\x1a\x1a.task.v1.ListTasksResponse\x12T\n" +
	"\x0fGetFilterCounts\x12\x1f.task.v1.GetFilterCountsRequest\x1a .task.v1.GetFilterCountsResponse2\xb9\x01\n" +
	"\x11PreferenceService\x12N\n" +
	"\x0eGetPreferences\x12\x1e.task.v1.GetPreferencesRequest\x1a\x1c.task.v1.PreferencesResponse\x12T\n" +
	"\x11UpdatePreferences\x12!.task.v1.UpdatePreferencesRequest\x1a\x1c.task.v1.PreferencesResponseBCZAgithub.com/daybook-app/daybook/api/proto/task/v1/generated;taskv1b\x06proto3"

var (
	file_task_v1_task_proto_rawDescOnce sync.Once
	file_task_v1_task_proto_rawDescData []byte
)

func file_task_v1_task_proto_rawDescGZIP() []byte {
	file_task_v1_task_proto_rawDescOnce.Do(func() {
		file_task_v1_task_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_task_v1_task_proto_rawDesc), len(file_task_v1_task_proto_rawDesc)))
	})
	return file_task_v1_task_proto_rawDescData
}

var file_task_v1_task_proto_enumTypes = make([]protoimpl.EnumInfo, 3)
var file_task_v1_task_proto_msgTypes = make([]protoimpl.MessageInfo, 21)
var file_task_v1_task_proto_goTypes = []any{
	(TaskStatus)(0),                  // 0: task.v1.TaskStatus
	(Priority)(0),                    // 1: task.v1.Priority
	(FilterBucket)(0),                // 2: task.v1.FilterBucket
	(*Task)(nil),                     // 3: task.v1.Task
	(*CreateTaskRequest)(nil),        // 4: task.v1.CreateTaskRequest
	(*CreateTaskResponse)(nil),       // 5: task.v1.CreateTaskResponse
	(*GetTaskRequest)(nil),           // 6: task.v1.GetTaskRequest
	(*GetTaskResponse)(nil),          // 7: task.v1.GetTaskResponse
	(*UpdateTaskRequest)(nil),        // 8: task.v1.UpdateTaskRequest
	(*UpdateTaskResponse)(nil),       // 9: task.v1.UpdateTaskResponse
	(*CompleteTaskRequest)(nil),      // 10: task.v1.CompleteTaskRequest
	(*CompleteTaskResponse)(nil),     // 11: task.v1.CompleteTaskResponse
	(*ReopenTaskRequest)(nil),        // 12: task.v1.ReopenTaskRequest
	(*ReopenTaskResponse)(nil),       // 13: task.v1.ReopenTaskResponse
	(*ArchiveTaskRequest)(nil),       // 14: task.v1.ArchiveTaskRequest
	(*ArchiveTaskResponse)(nil),      // 15: task.v1.ArchiveTaskResponse
	(*DeleteTaskRequest)(nil),        // 16: task.v1.DeleteTaskRequest
	(*ListTasksRequest)(nil),         // 17: task.v1.ListTasksRequest
	(*ListTasksResponse)(nil),        // 18: task.v1.ListTasksResponse
	(*GetFilterCountsRequest)(nil),   // 19: task.v1.GetFilterCountsRequest
	(*GetFilterCountsResponse)(nil),  // 20: task.v1.GetFilterCountsResponse
	(*GetPreferencesRequest)(nil),    // 21: task.v1.GetPreferencesRequest
	(*UpdatePreferencesRequest)(nil), // 22: task.v1.UpdatePreferencesRequest
	(*PreferencesResponse)(nil),      // 23: task.v1.PreferencesResponse
	(*timestamppb.Timestamp)(nil),    // 24: google.protobuf.Timestamp
	(*emptypb.Empty)(nil),            // 25: google.protobuf.Empty
}
var file_task_v1_task_proto_depIdxs = []int32{
	0,  // 0: task.v1.Task.status:type_name -> task.v1.TaskStatus
	1,  // 1: task.v1.Task.priority:type_name -> task.v1.Priority
	24, // 2: task.v1.Task.due_date:type_name -> google.protobuf.Timestamp
	24, // 3: task.v1.Task.completed_at:type_name -> google.protobuf.Timestamp
	24, // 4: task.v1.Task.created_at:type_name -> google.protobuf.Timestamp
	24, // 5: task.v1.Task.updated_at:type_name -> google.protobuf.Timestamp
	1,  // 6: task.v1.CreateTaskRequest.priority:type_name -> task.v1.Priority
	3,  // 7: task.v1.CreateTaskResponse.task:type_name -> task.v1.Task
	3,  // 8: task.v1.GetTaskResponse.task:type_name -> task.v1.Task
	1,  // 9: task.v1.UpdateTaskRequest.priority:type_name -> task.v1.Priority
	3,  // 10: task.v1.UpdateTaskResponse.task:type_name -> task.v1.Task
	3,  // 11: task.v1.CompleteTaskResponse.task:type_name -> task.v1.Task
	3,  // 12: task.v1.ReopenTaskResponse.task:type_name -> task.v1.Task
	3,  // 13: task.v1.ArchiveTaskResponse.task:type_name -> task.v1.Task
	2,  // 14: task.v1.ListTasksRequest.bucket:type_name -> task.v1.FilterBucket
	3,  // 15: task.v1.ListTasksResponse.tasks:type_name -> task.v1.Task
	4,  // 16: task.v1.TaskService.CreateTask:input_type -> task.v1.CreateTaskRequest
	6,  // 17: task.v1.TaskService.GetTask:input_type -> task.v1.GetTaskRequest
	8,  // 18: task.v1.TaskService.UpdateTask:input_type -> task.v1.UpdateTaskRequest
	10, // 19: task.v1.TaskService.CompleteTask:input_type -> task.v1.CompleteTaskRequest
	12, // 20: task.v1.TaskService.ReopenTask:input_type -> task.v1.ReopenTaskRequest
	14, // 21: task.v1.TaskService.ArchiveTask:input_type -> task.v1.ArchiveTaskRequest
	16, // 22: task.v1.TaskService.DeleteTask:input_type -> task.v1.DeleteTaskRequest
	17, // 23: task.v1.TaskService.ListTasks:input_type -> task.v1.ListTasksRequest
	19, // 24: task.v1.TaskService.GetFilterCounts:input_type -> task.v1.GetFilterCountsRequest
	21, // 25: task.v1.PreferenceService.GetPreferences:input_type -> task.v1.GetPreferencesRequest
	22, // 26: task.v1.PreferenceService.UpdatePreferences:input_type -> task.v1.UpdatePreferencesRequest
	5,  // 27: task.v1.TaskService.CreateTask:output_type -> task.v1.CreateTaskResponse
	7,  // 28: task.v1.TaskService.GetTask:output_type -> task.v1.GetTaskResponse
	9,  // 29: task.v1.TaskService.UpdateTask:output_type -> task.v1.UpdateTaskResponse
	11, // 30: task.v1.TaskService.CompleteTask:output_type -> task.v1.CompleteTaskResponse
	13, // 31: task.v1.TaskService.ReopenTask:output_type -> task.v1.ReopenTaskResponse
	15, // 32: task.v1.TaskService.ArchiveTask:output_type -> task.v1.ArchiveTaskResponse
	25, // 33: task.v1.TaskService.DeleteTask:output_type -> google.protobuf.Empty
	18, // 34: task.v1.TaskService.ListTasks:output_type -> task.v1.ListTasksResponse
	20, // 35: task.v1.TaskService.GetFilterCounts:output_type -> task.v1.GetFilterCountsResponse
	23, // 36: task.v1.PreferenceService.GetPreferences:output_type -> task.v1.PreferencesResponse
	23, // 37: task.v1.PreferenceService.UpdatePreferences:output_type -> task.v1.PreferencesResponse
	27, // [27:38] is the sub-list for method output_type
	16, // [16:27] is the sub-list for method input_type
	16, // [16:16] is the sub-list for extension type_name
	16, // [16:16] is the sub-list for extension extendee
	0,  // [0:16] is the sub-list for field type_name
}

func init() { file_task_v1_task_proto_init() }
func file_task_v1_task_proto_init() {
	if File_task_v1_task_proto != nil {
		return
	}
	file_task_v1_task_proto_msgTypes[19].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_task_v1_task_proto_rawDesc), len(file_task_v1_task_proto_rawDesc)),
			NumEnums:      3,
			NumMessages:   21,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_task_v1_task_proto_goTypes,
		DependencyIndexes: file_task_v1_task_proto_depIdxs,
		EnumInfos:         file_task_v1_task_proto_enumTypes,
		MessageInfos:      file_task_v1_task_proto_msgTypes,
	}.Build()
	File_task_v1_task_proto = out.File
	file_task_v1_task_proto_goTypes = nil
	file_task_v1_task_proto_depIdxs = nil
}

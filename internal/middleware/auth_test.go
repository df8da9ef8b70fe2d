// internal/middleware/auth_test.go
package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/daybook-app/daybook/pkg/auth"
)

func callUnary(t *testing.T, interceptor *AuthInterceptor, ctx context.Context, method string) (context.Context, error) {
	t.Helper()
	var seen context.Context
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		seen = ctx
		return nil, nil
	}
	_, err := interceptor.Unary()(ctx, nil, &grpc.UnaryServerInfo{FullMethod: method}, handler)
	return seen, err
}

func TestAuthInterceptor_PlacesScopeIntoContext(t *testing.T) {
	manager := auth.NewTokenManager("test-secret", time.Minute)
	interceptor := NewAuthInterceptor(manager)
	userID := uuid.New()

	token, err := manager.Generate("acme", userID, "user@example.com")
	require.NoError(t, err)

	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs("authorization", "Bearer "+token))

	handlerCtx, err := callUnary(t, interceptor, ctx, "/task.v1.TaskService/ListTasks")
	require.NoError(t, err)

	tenantID, ok := TenantIDFromContext(handlerCtx)
	require.True(t, ok)
	assert.Equal(t, "acme", tenantID)

	gotUserID, ok := UserIDFromContext(handlerCtx)
	require.True(t, ok)
	assert.Equal(t, userID.String(), gotUserID)
}

func TestAuthInterceptor_RejectsMissingToken(t *testing.T) {
	interceptor := NewAuthInterceptor(auth.NewTokenManager("test-secret", time.Minute))

	_, err := callUnary(t, interceptor,
		metadata.NewIncomingContext(context.Background(), metadata.MD{}),
		"/task.v1.TaskService/ListTasks")
	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestAuthInterceptor_RejectsBadToken(t *testing.T) {
	interceptor := NewAuthInterceptor(auth.NewTokenManager("test-secret", time.Minute))

	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs("authorization", "Bearer bogus"))

	_, err := callUnary(t, interceptor, ctx, "/task.v1.TaskService/ListTasks")
	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestAuthInterceptor_HealthStaysPublic(t *testing.T) {
	interceptor := NewAuthInterceptor(auth.NewTokenManager("test-secret", time.Minute))

	_, err := callUnary(t, interceptor, context.Background(), "/grpc.health.v1.Health/Check")
	assert.NoError(t, err)
}

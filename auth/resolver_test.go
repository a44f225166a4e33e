package auth

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"persona-emails/domain"
	"persona-emails/errors"
	"persona-emails/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("should short-circuit system calls", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		verifier := mocks.NewMockITokenVerifier(ctrl)
		verifier.EXPECT().Verify(gomock.Any(), gomock.Any()).Times(0)

		resolved, err := NewResolver(slog.Default(), verifier, false).
			Resolve(ctx, CallContext{Origin: OriginSystem})

		req.NoError(err)
		req.True(IsSystem(resolved))
		_, hasIdentity := IdentityFromContext(resolved)
		req.False(hasIdentity)
	})

	t.Run("should attach the verified identity and strip the scheme", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		verifier := mocks.NewMockITokenVerifier(ctrl)
		verifier.EXPECT().Verify(gomock.Any(), "token-123").
			Return(domain.Identity{UID: "uid-bob"}, nil).Times(1)

		resolved, err := NewResolver(slog.Default(), verifier, false).
			Resolve(ctx, CallContext{Origin: OriginUser, Authorization: "Bearer token-123"})

		req.NoError(err)
		req.False(IsSystem(resolved))
		identity, ok := IdentityFromContext(resolved)
		req.True(ok)
		req.Equal("uid-bob", identity.UID)
	})

	t.Run("should still call the verifier when the credential is missing", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		verifier := mocks.NewMockITokenVerifier(ctrl)
		verifier.EXPECT().Verify(gomock.Any(), "").
			Return(domain.Identity{}, fmt.Errorf("%w: empty token", errors.ErrUnauthenticated)).Times(1)

		_, err := NewResolver(slog.Default(), verifier, false).Resolve(ctx, CallContext{})

		req.ErrorIs(err, errors.ErrUnauthenticated)
	})

	t.Run("should reject a missing credential upfront in strict mode", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		verifier := mocks.NewMockITokenVerifier(ctrl)
		verifier.EXPECT().Verify(gomock.Any(), gomock.Any()).Times(0)

		_, err := NewResolver(slog.Default(), verifier, true).Resolve(ctx, CallContext{Origin: OriginUser})

		req.ErrorIs(err, errors.ErrUnauthenticated)
	})

	t.Run("should classify any verifier failure as unauthenticated", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		verifier := mocks.NewMockITokenVerifier(ctrl)
		verifier.EXPECT().Verify(gomock.Any(), "abc").
			Return(domain.Identity{}, fmt.Errorf("key set unreachable")).Times(1)

		_, err := NewResolver(slog.Default(), verifier, false).
			Resolve(ctx, CallContext{Authorization: "abc"})

		req.ErrorIs(err, errors.ErrUnauthenticated)
	})
}

func TestStripScheme(t *testing.T) {
	req := require.New(t)
	req.Equal("abc", stripScheme("Bearer abc"))
	req.Equal("abc", stripScheme("Token  abc "))
	req.Equal("abc", stripScheme("abc"))
	req.Equal("", stripScheme(""))
}

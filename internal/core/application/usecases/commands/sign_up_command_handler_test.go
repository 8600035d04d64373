package commands_test

import (
	"context"
	"testing"
	"time"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/account"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoredUser(t *testing.T, id kernel.UUID, verified bool) *account.User {
	t.Helper()
	u, err := account.RestoreUser(id, "Ada", "ada@example.com", "",
		account.RoleCustomer, verified, "123456", time.Now().Add(time.Minute), kernel.UUID{}, time.Now())
	require.NoError(t, err)
	return u
}

func TestSignUpCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewSignUpCommand(id, "Ada", "ada@example.com", "", "")

	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, "ada@example.com").
			Return(nil, errs.NewObjectNotFoundError("email", "ada@example.com")).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*account.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSignUpCommandHandler(factory)
	code, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, code, 6)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSignUpCommandHandler_Handle_StoresIssuedCode(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSignUpCommand(kernel.NewUUID(), "Ada", "ada@example.com", "", "")

	var added *account.User
	repo := new(MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "ada@example.com").
		Return(nil, errs.NewObjectNotFoundError("email", "ada@example.com")).Once()
	repo.On("Add", mock.Anything, mock.AnythingOfType("*account.User")).
		Run(func(args mock.Arguments) { added = args.Get(1).(*account.User) }).
		Return(nil).Once()

	uow := new(MockUserUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSignUpCommandHandler(factory)
	code, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, added)
	require.False(t, added.IsVerified())
	require.Len(t, added.Code(), 6)
	require.Equal(t, added.Code(), code)
	require.True(t, added.CodeExpiresAt().After(time.Now()))
}

func TestSignUpCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSignUpCommand(kernel.NewUUID(), "Ada", "ada@example.com", "", "")

	existing := restoredUser(t, kernel.NewUUID(), true)
	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, "ada@example.com").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSignUpCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrEmailAlreadyRegistered)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSignUpCommandHandler_Handle_UnknownReferrer(t *testing.T) {
	ctx := t.Context()
	referrerID := kernel.NewUUID()
	cmd, _ := commands.NewSignUpCommand(kernel.NewUUID(), "Ada", "ada@example.com", "", referrerID.String())

	repo := new(MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "ada@example.com").
		Return(nil, errs.NewObjectNotFoundError("email", "ada@example.com")).Once()
	repo.On("Get", mock.Anything, referrerID).
		Return(nil, errs.NewObjectNotFoundError("userId", referrerID)).Once()

	uow := new(MockUserUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSignUpCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrInvalidReferralCode)
	repo.AssertExpectations(t)
}

func TestSignUpCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.SignUpCommand{} // not constructed properly
	factory := new(MockUserUoWFactory)
	h := commands.NewSignUpCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

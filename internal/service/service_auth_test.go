// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vinted/internal/broker"
	"github.com/MKhiriev/go-vinted/internal/logger"
	"github.com/MKhiriev/go-vinted/internal/mock"
	"github.com/MKhiriev/go-vinted/internal/store"
	"github.com/MKhiriev/go-vinted/internal/utils"
	"github.com/MKhiriev/go-vinted/internal/validators"
	"github.com/MKhiriev/go-vinted/models"
)

type testMocks struct {
	users     *mock.MockUserRepository
	offers    *mock.MockOfferRepository
	images    *mock.MockImageStore
	cleanup   *mock.MockCleanupQueue
	publisher *mock.MockPublisher
}

func newTestDeps(t *testing.T) (Dependencies, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testMocks{
		users:     mock.NewMockUserRepository(ctrl),
		offers:    mock.NewMockOfferRepository(ctrl),
		images:    mock.NewMockImageStore(ctrl),
		cleanup:   mock.NewMockCleanupQueue(ctrl),
		publisher: mock.NewMockPublisher(ctrl),
	}

	deps := Dependencies{
		Storages:   &store.Storages{UserRepository: m.users, OfferRepository: m.offers},
		Images:     m.images,
		Cleanup:    m.cleanup,
		Publisher:  m.publisher,
		ImagesRoot: "vinted",
	}
	return deps, m
}

func newTestAuthService(t *testing.T) (*authService, testMocks) {
	t.Helper()
	deps, m := newTestDeps(t)

	svc, err := NewAuthService(deps, utils.HashAlgorithmSHA256, logger.Nop())
	require.NoError(t, err)
	return svc.(*authService), m
}

func validSignUp() models.SignUpRequest {
	return models.SignUpRequest{
		Username:   "alice",
		Email:      "alice@example.com",
		Password:   "s3cret",
		Newsletter: true,
	}
}

func TestNewAuthService_UnknownHasher(t *testing.T) {
	deps, _ := newTestDeps(t)

	_, err := NewAuthService(deps, "md5", logger.Nop())

	assert.ErrorIs(t, err, utils.ErrUnknownHashAlgorithm)
}

func TestAuthService_SignUp_Success(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()
	req := validSignUp()

	m.users.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{}, store.ErrUserNotFound)
	m.users.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(models.User{}, store.ErrUserNotFound)
	m.users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
		assert.False(t, u.ID.IsZero())
		assert.Equal(t, "alice", u.Account.Username)
		assert.True(t, u.Newsletter)
		assert.Len(t, u.Salt, saltLength)
		assert.Len(t, u.Token, tokenLength)
		assert.Equal(t, utils.HashAlgorithmSHA256, u.HashAlgorithm)
		assert.NotEqual(t, req.Password, u.Hash)
		assert.Nil(t, u.Account.Avatar)
		return u, nil
	})
	m.publisher.EXPECT().Publish(ctx, broker.SubjectUserSignedUp, gomock.Any()).Return(nil)

	user, err := svc.SignUp(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestAuthService_SignUp_ThenLogin(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()
	req := validSignUp()

	var stored models.User
	m.users.EXPECT().FindUserByUsername(ctx, gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
	m.users.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
	m.users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
		stored = u
		return u, nil
	})
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.SignUp(ctx, req)
	require.NoError(t, err)

	m.users.EXPECT().FindUserByEmail(ctx, req.Email).Return(stored, nil).Times(2)

	user, err := svc.Login(ctx, models.LoginRequest{Email: req.Email, Password: req.Password})
	require.NoError(t, err)
	assert.Equal(t, stored.Token, user.Token)

	_, err = svc.Login(ctx, models.LoginRequest{Email: req.Email, Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_SignUp_WithAvatar(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()
	req := validSignUp()
	req.Avatar = &models.UploadFile{Filename: "me.png", ContentType: "image/png", Data: []byte("png")}
	avatar := models.Image{PublicID: "vinted/users/x/avatar", URL: "https://img/avatar.png"}

	m.users.EXPECT().FindUserByUsername(ctx, gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
	m.users.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
	m.images.EXPECT().Upload(ctx, *req.Avatar, gomock.Any(), avatarPublicID).
		DoAndReturn(func(_ context.Context, _ models.UploadFile, folder, _ string) (models.Image, error) {
			assert.Regexp(t, `^vinted/users/[0-9a-f]{24}$`, folder)
			return avatar, nil
		})
	m.users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
		require.NotNil(t, u.Account.Avatar)
		assert.Equal(t, avatar, *u.Account.Avatar)
		return u, nil
	})
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.SignUp(ctx, req)

	require.NoError(t, err)
}

func TestAuthService_SignUp_AvatarRemovedWhenCreateFails(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()
	req := validSignUp()
	req.Avatar = &models.UploadFile{ContentType: "image/png", Data: []byte("png")}

	m.users.EXPECT().FindUserByUsername(ctx, gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
	m.users.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
	m.images.EXPECT().Upload(ctx, gomock.Any(), gomock.Any(), avatarPublicID).Return(models.Image{PublicID: "a"}, nil)
	m.users.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, errors.Join(store.ErrUserAlreadyExists, store.ErrEmailAlreadyExists))
	m.images.EXPECT().DeleteByPrefix(gomock.Any(), gomock.Any()).Return(nil)
	m.images.EXPECT().DeleteFolder(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.SignUp(ctx, req)

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_SignUp_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.SignUpRequest)
		wantErr error
	}{
		{name: "missing username", mutate: func(r *models.SignUpRequest) { r.Username = "" }, wantErr: validators.ErrMissingRequiredFields},
		{name: "missing email", mutate: func(r *models.SignUpRequest) { r.Email = "" }, wantErr: validators.ErrMissingRequiredFields},
		{name: "missing password", mutate: func(r *models.SignUpRequest) { r.Password = "" }, wantErr: validators.ErrMissingRequiredFields},
		{name: "username with space", mutate: func(r *models.SignUpRequest) { r.Username = "al ice" }, wantErr: validators.ErrUsernameHasSpaces},
		{name: "avatar not an image", mutate: func(r *models.SignUpRequest) {
			r.Avatar = &models.UploadFile{ContentType: "application/pdf", Data: []byte("%PDF")}
		}, wantErr: validators.ErrInvalidFileType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestAuthService(t)
			req := validSignUp()
			tt.mutate(&req)

			_, err := svc.SignUp(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_SignUp_UsernameTaken(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()

	m.users.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{ID: primitive.NewObjectID()}, nil)

	_, err := svc.SignUp(ctx, validSignUp())

	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthService_SignUp_EmailTaken(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()

	m.users.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{}, store.ErrUserNotFound)
	m.users.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(models.User{ID: primitive.NewObjectID()}, nil)

	_, err := svc.SignUp(ctx, validSignUp())

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_SignUp_LookupError(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	m.users.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{}, dbErr)

	_, err := svc.SignUp(ctx, validSignUp())

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()

	hasher, err := utils.NewPasswordHasher(utils.HashAlgorithmSHA256)
	require.NoError(t, err)
	user := models.User{ID: primitive.NewObjectID(), Email: "bob@example.com", Salt: "salt", Hash: hasher.Hash("right", "salt")}

	m.users.EXPECT().FindUserByEmail(ctx, "ghost@example.com").Return(models.User{}, store.ErrUserNotFound)
	m.users.EXPECT().FindUserByEmail(ctx, "bob@example.com").Return(user, nil)

	_, unknownErr := svc.Login(ctx, models.LoginRequest{Email: "ghost@example.com", Password: "right"})
	_, wrongErr := svc.Login(ctx, models.LoginRequest{Email: "bob@example.com", Password: "wrong"})

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAuthService_Login_LegacyUserWithoutAlgorithm(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()

	// base64(sha256("password" + "salt")) as stored by earlier deployments.
	legacy := models.User{
		ID:    primitive.NewObjectID(),
		Email: "old@example.com",
		Salt:  "salt",
		Hash:  "eje4XIkY6sGakInA+loqtNzj+QUo3N7sEIsj3fNge5k=",
	}

	m.users.EXPECT().FindUserByEmail(ctx, legacy.Email).Return(legacy, nil)

	user, err := svc.Login(ctx, models.LoginRequest{Email: legacy.Email, Password: "password"})

	require.NoError(t, err)
	assert.Equal(t, legacy.ID, user.ID)
}

func TestAuthService_Login_Argon2User(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()

	hasher, err := utils.NewPasswordHasher(utils.HashAlgorithmArgon2ID)
	require.NoError(t, err)
	user := models.User{
		ID:            primitive.NewObjectID(),
		Email:         "new@example.com",
		Salt:          "0123456789abcdef",
		HashAlgorithm: utils.HashAlgorithmArgon2ID,
	}
	user.Hash = hasher.Hash("pw", user.Salt)

	m.users.EXPECT().FindUserByEmail(ctx, user.Email).Return(user, nil)

	_, err = svc.Login(ctx, models.LoginRequest{Email: user.Email, Password: "pw"})

	assert.NoError(t, err)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "a@example.com"})

	assert.ErrorIs(t, err, validators.ErrMissingRequiredFields)
}

func TestAuthService_Logout_RotatesToken(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()
	user := models.User{ID: primitive.NewObjectID(), Token: "old-token"}

	m.users.EXPECT().UpdateToken(ctx, user.ID, gomock.Any()).DoAndReturn(func(_ context.Context, _ primitive.ObjectID, token string) error {
		assert.NotEqual(t, "old-token", token)
		assert.Len(t, token, tokenLength)
		return nil
	})

	assert.NoError(t, svc.Logout(ctx, user))
}

func TestAuthService_Authenticate(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()
	user := models.User{ID: primitive.NewObjectID(), Token: "tok"}

	m.users.EXPECT().FindUserByToken(ctx, "tok").Return(user, nil)
	m.users.EXPECT().FindUserByToken(ctx, "stale").Return(models.User{}, store.ErrUserNotFound)
	m.users.EXPECT().FindUserByToken(ctx, "boom").Return(models.User{}, errors.New("db down"))

	got, err := svc.Authenticate(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.Authenticate(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Authenticate(ctx, "stale")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Authenticate(ctx, "boom")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"carshare/config"
	"carshare/infras/jwt"
	jwtMocks "carshare/infras/jwt/mocks"
	"carshare/infras/otel/mocks"
	"carshare/internal/domains/auth/model/dto"
	"carshare/internal/domains/auth/service"
	userMocks "carshare/internal/domains/user/mocks"
	userModel "carshare/internal/domains/user/model"
	"carshare/shared/constant"
	gModel "carshare/shared/model"
	"carshare/shared/timezone"
)

func stringPtr(s string) *string {
	return &s
}

func validUser() userModel.User {
	return userModel.User{
		ID:         "user-id-123",
		Email:      "test@example.com",
		Password:   "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi", // "password" hashed
		Role:       constant.RoleUser,
		FullName:   stringPtr("Test User"),
		IsVerified: true,
		Active:     true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, &config.Config{}, mockOtel, mockJWT)

	t.Run("successful registration", func(t *testing.T) {
		mockUserRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		mockUserRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user userModel.User) error {
				assert.Equal(t, "new@example.com", user.Email)
				assert.Equal(t, constant.RoleUser, user.Role)
				assert.NotEqual(t, "password123", user.Password)
				assert.True(t, user.Active)

				return nil
			})

		err := svc.Register(context.Background(), dto.RegisterRequest{
			Email:    "new@example.com",
			Password: "password123",
		})
		assert.NoError(t, err)
	})

	t.Run("email already registered", func(t *testing.T) {
		mockUserRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := svc.Register(context.Background(), dto.RegisterRequest{
			Email:    "taken@example.com",
			Password: "password123",
		})
		assert.Error(t, err)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, cfg, mockOtel, mockJWT)

	user := validUser()

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful login",
			req: dto.LoginRequest{
				Email:    "test@example.com",
				Password: "password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(user.ID, user.Email, user.Role).
					Return(&jwt.TokenPair{
						AccessToken:  "access-token",
						RefreshToken: "refresh-token",
					}, nil)

				mockUserRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "user not found",
			req: dto.LoginRequest{
				Email:    "nonexistent@example.com",
				Password: "password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, errors.New("user not found"))
			},
			wantErr: true,
		},
		{
			name: "wrong password",
			req: dto.LoginRequest{
				Email:    "test@example.com",
				Password: "wrongpassword",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)
			},
			wantErr: true,
		},
		{
			name: "inactive user",
			req: dto.LoginRequest{
				Email:    "test@example.com",
				Password: "password",
			},
			setupMock: func() {
				inactiveUser := user
				inactiveUser.Active = false

				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(inactiveUser, nil)
			},
			wantErr: true,
		},
		{
			name: "token generation error",
			req: dto.LoginRequest{
				Email:    "test@example.com",
				Password: "password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(user.ID, user.Email, user.Role).
					Return(nil, errors.New("token generation failed"))
			},
			wantErr: true,
		},
		{
			name: "update last login error",
			req: dto.LoginRequest{
				Email:    "test@example.com",
				Password: "password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(user.ID, user.Email, user.Role).
					Return(&jwt.TokenPair{
						AccessToken:  "access-token",
						RefreshToken: "refresh-token",
					}, nil)

				mockUserRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.AccessToken)
				assert.NotEmpty(t, result.RefreshToken)
			}
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, &config.Config{}, mockOtel, mockJWT)

	t.Run("successful token refresh", func(t *testing.T) {
		mockJWT.EXPECT().
			RefreshTokens("valid-refresh-token").
			Return(&jwt.TokenPair{
				AccessToken:  "new-access-token",
				RefreshToken: "new-refresh-token",
			}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{
			RefreshToken: "valid-refresh-token",
		})
		assert.NoError(t, err)
		assert.Equal(t, "new-access-token", res.AccessToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		mockJWT.EXPECT().
			RefreshTokens("bad-token").
			Return(nil, errors.New("token expired"))

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{
			RefreshToken: "bad-token",
		})
		assert.Error(t, err)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, &config.Config{}, mockOtel, mockJWT)

	user := validUser()

	t.Run("successful password change", func(t *testing.T) {
		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(user, nil)

		mockUserRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "password",
			NewPassword:     "newpassword123",
		}, user.ID)
		assert.NoError(t, err)
	})

	t.Run("wrong current password", func(t *testing.T) {
		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(user, nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "wrong",
			NewPassword:     "newpassword123",
		}, user.ID)
		assert.Error(t, err)
	})

	t.Run("user not found", func(t *testing.T) {
		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{}, nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "password",
			NewPassword:     "newpassword123",
		}, "missing-id")
		assert.Error(t, err)
	})
}

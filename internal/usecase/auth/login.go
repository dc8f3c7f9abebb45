package auth

import (
	"context"

	"github.com/Autum7899/My-Portfolio/internal/domain/content"
	"github.com/Autum7899/My-Portfolio/pkg/apperror"
	"github.com/Autum7899/My-Portfolio/pkg/auth"
	"github.com/Autum7899/My-Portfolio/pkg/logger"
)

type LoginUseCase struct {
	adminRepo content.AdminRepository
	jwtSvc    *auth.JWTService
	logger    logger.Logger
}

func NewLoginUseCase(repo content.AdminRepository, jwtSvc *auth.JWTService, log logger.Logger) *LoginUseCase {
	return &LoginUseCase{
		adminRepo: repo,
		jwtSvc:    jwtSvc,
		logger:    log,
	}
}

type LoginInput struct {
	Password string
}

type LoginOutput struct {
	Token string
}

// Execute checks the candidate against the stored bcrypt hash. A wrong
// password and a missing account both come back as the same unauthorized
// error so the response reveals nothing about which part failed.
func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	hash, err := uc.adminRepo.PasswordHash(ctx)
	if err != nil {
		return nil, apperror.NewUnauthorized("admin account unavailable", err)
	}

	if !auth.CheckPasswordHash(input.Password, hash) {
		return nil, apperror.NewUnauthorized("incorrect password", nil)
	}

	token, err := uc.jwtSvc.GenerateToken()
	if err != nil {
		uc.logger.Error("Failed to generate token", err)
		return nil, apperror.NewInternal("failed to generate token", err)
	}

	return &LoginOutput{Token: token}, nil
}

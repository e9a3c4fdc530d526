// Package auth implements single-operator login. There is no user database:
// one configured username/password pair gates all API access.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/Iamyashjain/handy-sales-manager/internal/application/dto"
	"github.com/Iamyashjain/handy-sales-manager/internal/domain"
	"github.com/Iamyashjain/handy-sales-manager/pkg/config"
	"github.com/Iamyashjain/handy-sales-manager/pkg/jwt"
	"github.com/Iamyashjain/handy-sales-manager/pkg/logger"
)

// UseCase checks credentials and issues JWTs.
type UseCase struct {
	username     string
	passwordHash []byte
	jwtCfg       config.JWTConfig
	log          *logger.Logger
}

// NewUseCase hashes the configured password once at construction so the plain
// text is not kept around.
func NewUseCase(authCfg config.AuthConfig, jwtCfg config.JWTConfig, log *logger.Logger) (*UseCase, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(authCfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &UseCase{
		username:     authCfg.Username,
		passwordHash: hash,
		jwtCfg:       jwtCfg,
		log:          log,
	}, nil
}

// Login validates the credentials and returns a signed token. Wrong username
// and wrong password are indistinguishable to the caller.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username != uc.username {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(uc.passwordHash, []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, in.Username, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("username", in.Username).Msg("operator logged in")
	return &dto.LoginResponse{Token: token, Username: in.Username}, nil
}

package auth

import (
	"context"
	"time"

	"careportal-service/internal/app/config"
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository    contracts.UserRepository
	PatientRepository contracts.PatientRepository
	RedisRepository   contracts.RedisRepository
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	patientRepository contracts.PatientRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository:    userRepository,
		PatientRepository: patientRepository,
		RedisRepository:   redisRepository,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

func (uc *authUsecase) RegisterPatient(ctx context.Context, request *requests.RegisterPatient) (*responses.RegisterPatient, error) {
	if request.Password != request.RetypePassword {
		return nil, exceptions.ErrPasswordDoNotMatch(nil)
	}

	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	existingUser, err = uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrUsernameAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	user := &models.User{
		Role:        models.RolePatient,
		Email:       request.Email,
		Username:    request.Username,
		Password:    hashedPassword,
		DisplayName: request.FullName,
		TimeModel:   models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	patient := &models.Patient{
		UserID:    userID,
		FullName:  request.FullName,
		TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	patientID, err := uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		return nil, err
	}

	user.ID = userID
	user.PatientID = patientID
	err = uc.UserRepository.UpdateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	response := &responses.RegisterPatient{
		UserID:    userID,
		PatientID: patientID,
	}
	return response, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	user, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	sessionTTL := time.Duration(uc.InternalConfig.App.SessionTTLInHour) * time.Hour
	sessionID := utils.GenerateSessionID()
	session := models.Session{
		SessionID:      sessionID,
		UserID:         user.ID,
		Role:           user.Role,
		Email:          user.Email,
		Username:       user.Username,
		DisplayName:    user.DisplayName,
		PatientID:      user.PatientID,
		PractitionerID: user.PractitionerID,
		ExpiresAt:      time.Now().Add(sessionTTL),
	}

	err = uc.RedisRepository.Set(ctx, sessionID, session, sessionTTL)
	if err != nil {
		return nil, exceptions.WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevRedisStoreSession)
	}

	tokenString, err := utils.GenerateSessionJWT(sessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
		zap.String(constvars.LoggingRoleKey, string(user.Role)),
	)

	response := &responses.Login{
		Token: tokenString,
	}
	return response, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	err := uc.RedisRepository.Delete(ctx, sessionID)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error deleting session from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

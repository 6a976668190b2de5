package auth

import (
	"context"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	autherrors "github.com/Leonguyenbk/QLCV/internal/auth/errors"
	"github.com/Leonguyenbk/QLCV/internal/employee"
	"github.com/Leonguyenbk/QLCV/internal/user"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, username, password string) (accessToken, refreshToken string, resp AuthResponse, err error)
	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AuthResponse, err error)
	GetMe(ctx context.Context, userID string) (*AuthResponse, error)
}

type service struct {
	users     user.Repository
	employees employee.Repository
	logger    *zap.Logger
}

func NewService(users user.Repository, employees employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{users: users, employees: employees, logger: l}
}

// identity carries everything a token and an AuthResponse are built from.
// The department and org role live on the linked employee, so the gate can
// decide scope from claims alone.
type identity struct {
	userID       string
	username     string
	systemRole   string
	employeeID   string
	departmentID string
	orgRole      string
}

func (s *service) Login(ctx context.Context, username, password string) (string, string, AuthResponse, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	id, err := s.resolveIdentity(ctx, u)
	if err != nil {
		return "", "", AuthResponse{}, err
	}

	accessToken, err := generateToken(id, time.Minute*15)
	if err != nil {
		return "", "", AuthResponse{}, err
	}
	refreshToken, err := generateToken(id, time.Hour*24*7)
	if err != nil {
		return "", "", AuthResponse{}, err
	}

	s.logger.Info("login success", zap.String("user_id", id.userID))

	return accessToken, refreshToken, toAuthResponse(id), nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrUserNotFound
	}

	// Re-resolve from storage so a role or department change takes effect
	// on the next refresh instead of living until the token dies.
	id, err := s.resolveIdentity(ctx, u)
	if err != nil {
		return "", "", AuthResponse{}, err
	}

	newAccess, err := generateToken(id, time.Minute*15)
	if err != nil {
		return "", "", AuthResponse{}, err
	}
	newRefresh, err := generateToken(id, time.Hour*24*7)
	if err != nil {
		return "", "", AuthResponse{}, err
	}

	return newAccess, newRefresh, toAuthResponse(id), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	id, err := s.resolveIdentity(ctx, u)
	if err != nil {
		return nil, err
	}

	resp := toAuthResponse(id)
	return &resp, nil
}

func (s *service) resolveIdentity(ctx context.Context, u *user.User) (identity, error) {
	id := identity{
		userID:     u.ID.String(),
		username:   u.Username,
		systemRole: string(u.SystemRole),
	}

	if u.EmployeeID == nil {
		return id, nil
	}

	empl, err := s.employees.FindByID(ctx, u.EmployeeID.String())
	if err != nil {
		// A dangling employee link should not lock the account out;
		// the token simply carries no employee identity.
		s.logger.Warn("linked employee not found",
			zap.String("user_id", id.userID),
			zap.String("employee_id", u.EmployeeID.String()),
		)
		return id, nil
	}

	id.employeeID = empl.ID.String()
	id.orgRole = string(empl.OrgRole)
	if empl.DepartmentID != nil {
		id.departmentID = empl.DepartmentID.String()
	}
	return id, nil
}

func generateToken(id identity, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":     id.userID,
		"system_role": id.systemRole,
		"exp":         time.Now().Add(expiry).Unix(),
	}
	if id.employeeID != "" {
		claims["employee_id"] = id.employeeID
		claims["org_role"] = id.orgRole
	}
	if id.departmentID != "" {
		claims["department_id"] = id.departmentID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func toAuthResponse(id identity) AuthResponse {
	return AuthResponse{
		ID:           id.userID,
		Username:     id.username,
		SystemRole:   id.systemRole,
		EmployeeID:   id.employeeID,
		DepartmentID: id.departmentID,
		OrgRole:      id.orgRole,
	}
}

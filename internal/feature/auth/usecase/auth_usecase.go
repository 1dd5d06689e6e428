package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"todo_backend/internal/feature/auth/domain/entity"
	"todo_backend/internal/shared/sanitize"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 6

	// bcryptCost はパスワードハッシュのワークファクターです。
	bcryptCost = 13
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じユーザー名またはメールアドレスのユーザーが既に存在する場合、
	// ErrUserAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername は指定されたユーザー名に一致するユーザーを取得します。
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// UpdateLastLogin はユーザーの最終ログイン時刻を更新します。
	UpdateLastLogin(ctx context.Context, id uint, at time.Time) error

	// FindAll はすべてのユーザーを取得します。
	FindAll(ctx context.Context) ([]*entity.User, error)
}

// TokenIssuer はセッショントークン生成のインターフェースを定義します。
type TokenIssuer interface {
	// AccessToken は短命の署名済みトークンを生成します。
	AccessToken(userID uint, username string, superuser bool) (string, error)
	// RefreshToken は長命の署名済みトークンを生成します。
	RefreshToken(userID uint, username string, superuser bool) (string, error)
}

// SignupInput は新規登録リクエストの入力値です。
type SignupInput struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
	Gender          string
}

// TokenPair はログイン時に発行されるアクセス／リフレッシュトークンの組です。
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users    UserRepository
	tokens   TokenIssuer
	denylist TokenDenylist
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, tokens TokenIssuer, denylist TokenDenylist) *authUsecase {
	return &authUsecase{
		users:    users,
		tokens:   tokens,
		denylist: denylist,
	}
}

// validateSignup は登録入力がバリデーション要件を満たしているかチェックします。
func validateSignup(in SignupInput) error {
	if in.Username == "" {
		return fmt.Errorf("%w: username is required", ErrValidation)
	}
	if in.Email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if len(in.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters long", ErrValidation, minPasswordLength)
	}
	if in.Password != in.PasswordConfirm {
		return fmt.Errorf("%w: passwords do not match", ErrValidation)
	}
	if !entity.ValidGender(in.Gender) {
		return fmt.Errorf("%w: invalid gender", ErrValidation)
	}
	return nil
}

// Signup はハッシュ化されたパスワードで新規ユーザーを登録します。
// 自由入力フィールドは永続化前にマークアップを除去します。
func (u *authUsecase) Signup(ctx context.Context, in SignupInput) error {
	if err := validateSignup(in); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Username:    sanitize.Strict(in.Username),
		Email:       sanitize.Strict(in.Email),
		Gender:      sanitize.Strict(in.Gender),
		Password:    string(hashed),
		IsSuperuser: false,
		IsActive:    true,
	}
	return u.users.Create(ctx, user)
}

// Login はユーザーを認証し、成功時にトークンペアを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, username, password string) (*entity.User, TokenPair, error) {
	user, err := u.users.FindByUsername(ctx, username)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.Password
	}

	// タイミング攻撃防止のため、常にパスワードを検証
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// 「ユーザー名不明」と「パスワード不一致」を呼び出し側で区別させない
	if err != nil || compareErr != nil {
		return nil, TokenPair{}, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, TokenPair{}, ErrInactiveUser
	}

	now := time.Now()
	if err := u.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, TokenPair{}, fmt.Errorf("failed to update last login: %w", err)
	}
	user.LastLogin = &now

	access, err := u.tokens.AccessToken(user.ID, user.Username, user.IsSuperuser)
	if err != nil {
		return nil, TokenPair{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, err := u.tokens.RefreshToken(user.ID, user.Username, user.IsSuperuser)
	if err != nil {
		return nil, TokenPair{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return user, TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh は検証済みプリンシパルに対して新しいアクセストークンを発行します。
// リフレッシュトークン自体は再発行しません。
func (u *authUsecase) Refresh(userID uint, username string, superuser bool) (string, error) {
	access, err := u.tokens.AccessToken(userID, username, superuser)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return access, nil
}

// Logout は現在のリフレッシュトークンを失効リストに登録します。
// トークンの残存期間が過ぎればエントリも自然に消えます。
func (u *authUsecase) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if u.denylist == nil || tokenID == "" {
		return nil
	}
	if err := u.denylist.Revoke(ctx, tokenID, expiresAt); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// Profile はプリンシパルIDに対応する最新のユーザーレコードを取得します。
// クレームの値をそのまま返すのではなく、ストアを参照します。
func (u *authUsecase) Profile(ctx context.Context, userID uint) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

// ListUsers はすべてのユーザーの一覧を返します。スーパーユーザー専用です。
func (u *authUsecase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return u.users.FindAll(ctx)
}

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/krishkalaria12/plantdoc-serve/database"
	"github.com/krishkalaria12/plantdoc-serve/models"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailExists       = errors.New("email already exists")
	ErrUnregisteredEmail = errors.New("unregistered email")
	ErrWrongPassword     = errors.New("wrong password")
)

// NewAccount carries the fields required to open an account.
type NewAccount struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Service manages user accounts. It holds no state besides the store handle.
type Service struct {
	db   *gorm.DB
	log  zerolog.Logger
	cost int
}

func NewService(db *gorm.DB, log zerolog.Logger) *Service {
	return &Service{db: db, log: log, cost: bcrypt.DefaultCost}
}

// WithCost returns a copy of the service hashing at the given bcrypt cost.
func (s *Service) WithCost(cost int) *Service {
	c := *s
	c.cost = cost
	return &c
}

// CreateAccount hashes the password, refuses an email that is already
// registered and inserts the account. It returns every record stored under
// the email, which is the one just created.
func (s *Service) CreateAccount(ctx context.Context, in NewAccount) ([]models.User, error) {
	existing, err := s.getUserByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := hashPassword(in.Password, s.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  hash,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&user).Error
	})
	if err != nil {
		// Lost a race with a concurrent signup for the same email.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailExists
		}
		return nil, database.Wrap("create account", err)
	}

	s.log.Info().Uint("user_id", user.ID).Msg("account created")

	created := make([]models.User, 0, 1)
	if err := s.db.WithContext(ctx).Where("email = ?", in.Email).Find(&created).Error; err != nil {
		return nil, database.Wrap("read created account", err)
	}

	return created, nil
}

// Authenticate checks password against the hash stored for email. No
// session credential is issued.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.getUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnregisteredEmail
	}

	if user.Password == "" || !checkPasswordHash(password, user.Password) {
		return nil, ErrWrongPassword
	}

	return user, nil
}

// ListAccounts returns every account ordered by id.
func (s *Service) ListAccounts(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, database.Wrap("list accounts", err)
	}
	return users, nil
}

func hashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(hashed), err
}

func checkPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func (s *Service) getUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, database.Wrap("find account by email", err)
	}
	return &user, nil
}

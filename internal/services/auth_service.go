package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"monabazaar/internal/domain"
	"monabazaar/internal/repos"
)

// DemoOTP is the hardcoded verification code accepted in place of real OTP
// delivery.
const DemoOTP = "123456"

// The one credential pair the mock login accepts.
const (
	demoUsername = "test"
	demoPassword = "test"
)

// Result is how every auth operation resolves. Simulated-backend failures
// (wrong credentials, wrong code) come back as Success=false with a message,
// never as an error.
type Result struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *domain.User `json:"user,omitempty"`
}

// Registration carries the signup form through the two-step OTP flow.
type Registration struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Mobile   string `json:"mobile"`
}

// AuthService holds one mock session per browser session id, mirrored to the
// session repo. Each operation simulates a fixed-delay round trip; the wait
// observes ctx, so a canceled request resolves without touching state.
type AuthService struct {
	Sessions *repos.SessionRepo
	Users    *repos.UserRepo
	Delay    time.Duration

	mu    sync.Mutex
	cache map[string]*domain.User
}

func NewAuthService(sessions *repos.SessionRepo, users *repos.UserRepo, delay time.Duration) *AuthService {
	return &AuthService{
		Sessions: sessions,
		Users:    users,
		Delay:    delay,
		cache:    make(map[string]*domain.User),
	}
}

// simulate waits out the artificial round-trip delay. Abandoning the request
// abandons the state update with it.
func (s *AuthService) simulate(ctx context.Context) error {
	if s.Delay <= 0 {
		return nil
	}
	select {
	case <-time.After(s.Delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *AuthService) remember(sid string, u domain.User) error {
	if err := s.Sessions.Save(sid, u); err != nil {
		return err
	}
	s.mu.Lock()
	s.cache[sid] = &u
	s.mu.Unlock()
	return nil
}

// CurrentUser rehydrates the session from the mirror on first touch. A
// corrupt stored record counts as signed out.
func (s *AuthService) CurrentUser(sid string) (*domain.User, error) {
	s.mu.Lock()
	if u, ok := s.cache[sid]; ok {
		s.mu.Unlock()
		return u, nil
	}
	s.mu.Unlock()

	u, err := s.Sessions.Load(sid)
	if err != nil {
		return nil, err
	}
	if u != nil {
		s.mu.Lock()
		s.cache[sid] = u
		s.mu.Unlock()
	}
	return u, nil
}

// Login checks the single demo credential pair.
func (s *AuthService) Login(ctx context.Context, sid, username, password string) Result {
	if err := s.simulate(ctx); err != nil {
		return Result{Success: false, Message: "Request canceled."}
	}
	if username != demoUsername || password != demoPassword {
		return Result{Success: false, Message: "Invalid username or password. Use 'test' for both username and password."}
	}
	u := domain.User{
		ID:       "test_admin_user",
		Phone:    "+91 98765 43210",
		Email:    "test@monadesigners.com",
		Username: demoUsername,
		Name:     "Test Admin",
	}
	if err := s.remember(sid, u); err != nil {
		return Result{Success: false, Message: "Login failed. Please try again."}
	}
	return Result{Success: true, Message: "Login successful!", User: &u}
}

// SendOTP always succeeds in demo mode; the message names the demo code.
func (s *AuthService) SendOTP(ctx context.Context, phone string) Result {
	if err := s.simulate(ctx); err != nil {
		return Result{Success: false, Message: "Request canceled."}
	}
	return Result{Success: true, Message: fmt.Sprintf("OTP sent to %s. Use %s for demo.", phone, DemoOTP)}
}

// VerifyOTP accepts only the demo code and creates a guest session for the
// submitted phone number.
func (s *AuthService) VerifyOTP(ctx context.Context, sid, phone, code string) Result {
	if err := s.simulate(ctx); err != nil {
		return Result{Success: false, Message: "Request canceled."}
	}
	if code != DemoOTP {
		return Result{Success: false, Message: "Invalid OTP. Please try again."}
	}
	u := domain.User{
		ID:    fmt.Sprintf("user_%d", time.Now().UnixMilli()),
		Phone: phone,
		Name:  "Guest User",
	}
	if err := s.remember(sid, u); err != nil {
		return Result{Success: false, Message: "Verification failed. Please try again."}
	}
	return Result{Success: true, Message: "Login successful!", User: &u}
}

// RegisterUser stages a signup and "sends" the OTP. Always succeeds in demo
// mode.
func (s *AuthService) RegisterUser(ctx context.Context, data Registration) Result {
	if err := s.simulate(ctx); err != nil {
		return Result{Success: false, Message: "Request canceled."}
	}
	return Result{Success: true, Message: fmt.Sprintf("OTP sent to %s. Use %s for demo.", data.Mobile, DemoOTP)}
}

// VerifyRegistrationOTP completes signup on the demo code: the password is
// bcrypt-hashed into the users table and a session is created with the
// username as the initial display name.
func (s *AuthService) VerifyRegistrationOTP(ctx context.Context, sid, mobile, code string, data Registration) Result {
	if err := s.simulate(ctx); err != nil {
		return Result{Success: false, Message: "Request canceled."}
	}
	if code != DemoOTP {
		return Result{Success: false, Message: "Invalid OTP. Please try again."}
	}

	u := domain.User{
		ID:       fmt.Sprintf("user_%d", time.Now().UnixMilli()),
		Phone:    mobile,
		Email:    data.Email,
		Username: data.Username,
		Name:     data.Username,
	}
	if s.Users != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), 12)
		if err != nil {
			return Result{Success: false, Message: "Registration failed. Please try again."}
		}
		row := repos.UserRow{
			ID:       u.ID,
			Email:    u.Email,
			Username: u.Username,
			Phone:    u.Phone,
			Name:     u.Name,
			Hash:     string(hash),
		}
		if err := s.Users.Upsert(row); err != nil {
			return Result{Success: false, Message: "Registration failed. Please try again."}
		}
	}
	if err := s.remember(sid, u); err != nil {
		return Result{Success: false, Message: "Verification failed. Please try again."}
	}
	return Result{Success: true, Message: "Account created successfully!", User: &u}
}

// Logout drops the in-memory session and its mirror row.
func (s *AuthService) Logout(sid string) error {
	s.mu.Lock()
	delete(s.cache, sid)
	s.mu.Unlock()
	return s.Sessions.Delete(sid)
}

// UpdateProfile shallow-merges the patch over the current session and
// re-persists it. Without a session it is a no-op and returns nil.
func (s *AuthService) UpdateProfile(sid string, patch domain.ProfilePatch) (*domain.User, error) {
	u, err := s.CurrentUser(sid)
	if err != nil || u == nil {
		return nil, err
	}
	updated := *u
	patch.Apply(&updated)
	if err := s.remember(sid, updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"monabazaar/internal/domain"
	applog "monabazaar/internal/log"
	"monabazaar/internal/services"
	"monabazaar/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

// result helper: auth operations always answer 200 with {success,message};
// the client branches on success, not on status codes.
func authResult(c *fiber.Ctx, res services.Result) error {
	return c.JSON(res)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed body")
	}
	res := h.Auth.Login(c.UserContext(), sid, req.Username, req.Password)
	if res.Success {
		applog.Audit(c, "auth.login.success", map[string]any{"username": req.Username})
	} else {
		applog.Security(c, "auth.login.fail", map[string]any{"username": req.Username})
	}
	return authResult(c, res)
}

func (h *AuthHandler) SendOTP(c *fiber.Ctx) error {
	var req struct {
		Phone string `json:"phone"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed body")
	}
	phone, ok := validate.Phone(req.Phone)
	if !ok {
		return authResult(c, services.Result{Success: false, Message: "Please enter a valid phone number."})
	}
	return authResult(c, h.Auth.SendOTP(c.UserContext(), phone))
}

func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var req struct {
		Phone string `json:"phone"`
		OTP   string `json:"otp"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed body")
	}
	if _, ok := validate.OTP(req.OTP); !ok {
		return authResult(c, services.Result{Success: false, Message: "Invalid OTP. Please try again."})
	}
	res := h.Auth.VerifyOTP(c.UserContext(), sid, req.Phone, req.OTP)
	if res.Success {
		applog.Audit(c, "auth.otp.verified", map[string]any{"phone": req.Phone})
	} else {
		applog.Security(c, "auth.otp.fail", map[string]any{"phone": req.Phone})
	}
	return authResult(c, res)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req services.Registration
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed body")
	}
	if _, ok := validate.Email(req.Email); !ok {
		return authResult(c, services.Result{Success: false, Message: "Please enter a valid email address."})
	}
	if _, ok := validate.Username(req.Username); !ok {
		return authResult(c, services.Result{Success: false, Message: "Please choose a valid username."})
	}
	if _, ok := validate.Phone(req.Mobile); !ok {
		return authResult(c, services.Result{Success: false, Message: "Please enter a valid mobile number."})
	}
	return authResult(c, h.Auth.RegisterUser(c.UserContext(), req))
}

func (h *AuthHandler) VerifyRegistration(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var req struct {
		Mobile string                `json:"mobile"`
		OTP    string                `json:"otp"`
		Data   services.Registration `json:"data"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed body")
	}
	res := h.Auth.VerifyRegistrationOTP(c.UserContext(), sid, req.Mobile, req.OTP, req.Data)
	if res.Success {
		applog.Audit(c, "auth.register.verified", map[string]any{"mobile": req.Mobile})
	}
	return authResult(c, res)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	if err := h.Auth.Logout(sid); err != nil {
		applog.Error(c, "auth.logout.fail", err, nil)
	}
	// Expire cookie
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	applog.Audit(c, "auth.logout", nil)
	return c.JSON(fiber.Map{"success": true})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	u, err := h.Auth.CurrentUser(ensureSID(c))
	if err != nil {
		applog.Error(c, "auth.me.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load session"})
	}
	return c.JSON(fiber.Map{"authenticated": u != nil, "user": u})
}

func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var patch domain.ProfilePatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "malformed body")
	}
	if patch.Email != nil {
		if _, ok := validate.Email(*patch.Email); !ok {
			return badRequest(c, "invalid email")
		}
	}
	if patch.Phone != nil {
		if _, ok := validate.Phone(*patch.Phone); !ok {
			return badRequest(c, "invalid phone")
		}
	}
	u, err := h.Auth.UpdateProfile(sid, patch)
	if err != nil {
		applog.Error(c, "auth.profile.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not update profile"})
	}
	if u == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "not signed in"})
	}
	applog.Audit(c, "auth.profile.update", nil)
	return c.JSON(fiber.Map{"user": u})
}

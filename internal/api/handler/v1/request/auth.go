package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Stdlib regexp has no lookahead, hence regexp2 for the password rule.
var passwordPattern = regexp2.MustCompile(`^(?=.*[A-Za-z])(?=.*\d).{8,}$`, regexp2.None)

var errWeakPassword = errors.New("비밀번호는 영문과 숫자를 포함해 8자 이상이어야 합니다.")

type SignupRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	University string `json:"university"`
}

func (r SignupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.By(checkPassword)),
		validation.Field(&r.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&r.University, validation.Length(0, 100)),
	)
}

func checkPassword(value interface{}) error {
	password, _ := value.(string)

	ok, err := passwordPattern.MatchString(password)
	if err != nil || !ok {
		return errWeakPassword
	}

	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

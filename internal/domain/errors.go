package domain

import "net/http"

// AuthError is a business-rule rejection with a stable numeric code and the
// HTTP status the boundary layer should map it to. Infrastructure faults are
// never expressed as an AuthError; they propagate as plain wrapped errors.
type AuthError struct {
	Code    int
	Kind    string
	Message string
	Status  int
}

func (e *AuthError) Error() string { return e.Message }

var (
	ErrDuplicatedEmail = &AuthError{
		Code: 1000, Kind: "DUPLICATED_EMAIL",
		Message: "member already exists", Status: http.StatusConflict,
	}
	ErrInvalidPasswordFormat = &AuthError{
		Code: 1001, Kind: "INVALID_PASSWORD_FORMAT",
		Message: "password must be 8-16 characters and include a letter, a digit and one of @$!%*?&", Status: http.StatusBadRequest,
	}
	ErrInvalidPhoneNumberFormat = &AuthError{
		Code: 1002, Kind: "INVALID_PHONE_NUMBER_FORMAT",
		Message: "phone number must be 10-11 digits in the form 000-0000-0000", Status: http.StatusBadRequest,
	}
	ErrNotRegisteredMember = &AuthError{
		Code: 1003, Kind: "NOT_REGISTERED_MEMBER",
		Message: "member does not exist", Status: http.StatusUnauthorized,
	}
	ErrMemberNotFound = &AuthError{
		Code: 1004, Kind: "MEMBER_NOT_FOUND",
		Message: "member information not found", Status: http.StatusUnauthorized,
	}
	ErrPasswordMismatch = &AuthError{
		Code: 1005, Kind: "NOT_MATCHED_PASSWORD",
		Message: "password does not match", Status: http.StatusUnauthorized,
	}
	ErrPhoneNumberMismatch = &AuthError{
		Code: 1006, Kind: "NOT_MATCHED_PHONE_NUMBER",
		Message: "phone number does not match", Status: http.StatusUnauthorized,
	}
	ErrVerificationCodeMismatch = &AuthError{
		Code: 1007, Kind: "NOT_MATCHED_VERIFYING_CODE",
		Message: "verification code does not match", Status: http.StatusUnauthorized,
	}
	ErrUnauthorizedReset = &AuthError{
		Code: 1008, Kind: "UNAUTHORIZED_VERIFICATION",
		Message: "verification has not been completed", Status: http.StatusUnauthorized,
	}
)

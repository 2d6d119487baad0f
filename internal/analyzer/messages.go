package analyzer

// Length verdict messages.
const (
	MsgLengthTooShort  = "Password should be at least 8 characters long"
	MsgLengthGood      = "Good length (8-11 characters)"
	MsgLengthExcellent = "Excellent length (12+ characters)"
	MsgLengthEmpty     = "Password cannot be empty"
)

// Warning messages, listed in emission order.
const (
	WarnCommonPassword = "This is a commonly used password"
	WarnSequential     = "Contains sequential characters"
	WarnRepeated       = "Contains repeated characters"
	WarnKeyboard       = "Contains keyboard patterns"
	WarnEmpty          = "Password is empty"
)

// Suggestion messages, listed in emission order.
const (
	SuggestMinLength     = "Make password at least 8 characters long"
	SuggestLowercase     = "Add lowercase letters"
	SuggestUppercase     = "Add uppercase letters"
	SuggestDigit         = "Add numbers"
	SuggestSpecial       = "Add special characters (!@#$%^&*)"
	SuggestAvoidPatterns = "Avoid common passwords and patterns"
	SuggestLooksGood     = "Your password looks good!"
	SuggestEnterPassword = "Enter a password to analyze"
)

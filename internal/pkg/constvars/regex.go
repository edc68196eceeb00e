package constvars

const (
	RegexContainAtLeastOneSpecialChar = `[!@#~$%^&*()+|_.,<>?/\\-]`
	RegexContainAtLeastOneUppercase   = `[A-Z]`
	RegexDigitsOnly                   = `^[0-9]+$`
)

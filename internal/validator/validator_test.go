package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailPattern(t *testing.T) {
	valid := []string{
		"ab123@my.utsa.edu",
		"john.doe@my.utsa.edu",
		"AB123@UTSA.EDU",
		"ab123@My.Utsa.Edu",
	}
	for _, email := range valid {
		assert.True(t, EmailPattern.MatchString(email), email)
	}

	invalid := []string{
		"ab123@gmail.com",
		"ab123@utsa.com",
		"ab123@yours.utsa.edu",
		"ab123@my.utsa.edu.evil.com",
		"ab 123@my.utsa.edu",
		"@my.utsa.edu",
		"ab123utsa.edu",
		"",
	}
	for _, email := range invalid {
		assert.False(t, EmailPattern.MatchString(email), email)
	}
}

func TestSchoolIDPattern(t *testing.T) {
	valid := []string{"ab123", "abc123", "ab1234", "abc1234", "AB123", "zZy9876"}
	for _, id := range valid {
		assert.True(t, SchoolIDPattern.MatchString(id), id)
	}

	invalid := []string{"a123", "abcd123", "ab12", "abc12345", "123abc", "ab12c3", "abc123 ", ""}
	for _, id := range invalid {
		assert.False(t, SchoolIDPattern.MatchString(id), id)
	}
}

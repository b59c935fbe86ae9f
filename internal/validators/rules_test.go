// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPersonalName(t *testing.T) {
	valid := []string{"a", "Ana", "MARIA", "deLaCruz", "Zz"}
	for _, s := range valid {
		assert.True(t, IsValidPersonalName(s), "%q should be valid", s)
	}

	invalid := []string{"", "Ana Maria", "R2D2", "0", "O'Brien", "Jean-Luc", " Ana", "Ana ", "ana_b", "ana."}
	for _, s := range invalid {
		assert.False(t, IsValidPersonalName(s), "%q should be invalid", s)
	}
}

func TestIsValidPersonalName_AnyDigitOrSpaceRejects(t *testing.T) {
	base := "Name"
	for _, r := range "0123456789 \t" {
		for i := 0; i <= len(base); i++ {
			s := base[:i] + string(r) + base[i:]
			assert.False(t, IsValidPersonalName(s), "%q should be invalid", s)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@b.c", "john.doe@example.com", "x+tag@mail.co.uk", "ñ@d.es"}
	for _, s := range valid {
		assert.True(t, IsValidEmail(s), "%q should be valid", s)
	}

	invalid := []string{"", "plain", "a@b", "@b.c", "a@.c", "a b@c.d", "a@b@c.d", "a@b.", "a@b. c"}
	for _, s := range invalid {
		assert.False(t, IsValidEmail(s), "%q should be invalid", s)
	}
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("1234-5678"))
	assert.True(t, IsValidPhone("0000-0000"))

	for _, s := range []string{"12345678", "123-4567", "1234-567", "12345-678", "1234 5678", "abcd-efgh", " 1234-5678", ""} {
		assert.False(t, IsValidPhone(s), "%q should be invalid", s)
	}
}

func TestHasBirthday(t *testing.T) {
	assert.True(t, HasBirthday("01/01/2000"))
	assert.False(t, HasBirthday(""))
}

func TestIsValidBirthday(t *testing.T) {
	assert.True(t, IsValidBirthday("29/02/2000"))
	assert.False(t, IsValidBirthday("29/02/2001"))
	assert.False(t, IsValidBirthday("tomorrow"))
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akgarhwal/vault/models"
)

func validCard() models.ItemPayload {
	return models.NewCardPayload("Visa", "J DOE", "4111 1111 1111 1111", "09/29", "123")
}

func TestNewItemPayloadValidator(t *testing.T) {
	v := NewItemPayloadValidator()
	require.NotNil(t, v)
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewItemPayloadValidator()
	ctx := context.Background()
	payload := models.NewPasswordPayload("GitHub", "me", "pw", "https://github.com")

	assert.NoError(t, v.Validate(ctx, payload))
	assert.NoError(t, v.Validate(ctx, &payload))
	assert.NoError(t, v.Validate(ctx, models.DecryptedItem{ID: "x", ItemPayload: payload}))
	assert.NoError(t, v.Validate(ctx, &models.DecryptedItem{ID: "x", ItemPayload: payload}))
	assert.ErrorIs(t, v.Validate(ctx, "string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, payload, "bogus"), ErrUnknownField)
}

func TestValidate_Payload(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *models.ItemPayload)
		wantErr error
	}{
		{name: "valid card", mutate: func(p *models.ItemPayload) {}},
		{name: "empty card fields are optional", mutate: func(p *models.ItemPayload) {
			p.CardNumber, p.CardExpiry, p.CardCVV = "", "", ""
		}},
		{name: "unknown type", mutate: func(p *models.ItemPayload) { p.Type = "note" }, wantErr: ErrInvalidType},
		{name: "blank name", mutate: func(p *models.ItemPayload) { p.Name = "   " }, wantErr: ErrEmptyName},
		{name: "long name", mutate: func(p *models.ItemPayload) { p.Name = strings.Repeat("n", 257) }, wantErr: ErrNameTooLong},
		{name: "letters in number", mutate: func(p *models.ItemPayload) { p.CardNumber = "4111-1111-abcd-1111" }, wantErr: ErrInvalidCardNumber},
		{name: "short number", mutate: func(p *models.ItemPayload) { p.CardNumber = "4111" }, wantErr: ErrInvalidCardNumber},
		{name: "bad expiry month", mutate: func(p *models.ItemPayload) { p.CardExpiry = "13/29" }, wantErr: ErrInvalidCardExpiry},
		{name: "bad expiry format", mutate: func(p *models.ItemPayload) { p.CardExpiry = "2029-09" }, wantErr: ErrInvalidCardExpiry},
		{name: "bad cvv", mutate: func(p *models.ItemPayload) { p.CardCVV = "12" }, wantErr: ErrInvalidCardCVV},
		{name: "huge holder", mutate: func(p *models.ItemPayload) { p.CardHolder = strings.Repeat("h", 5000) }, wantErr: ErrFieldTooLong},
	}

	v := NewItemPayloadValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validCard()
			tt.mutate(&p)

			err := v.Validate(context.Background(), p)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_PasswordItemSkipsCardRules(t *testing.T) {
	p := models.NewPasswordPayload("Mail", "", "", "")
	p.CardCVV = "x"

	assert.NoError(t, NewItemPayloadValidator().Validate(context.Background(), p))
}

func TestValidate_FieldScoping(t *testing.T) {
	p := validCard()
	p.Name = ""

	v := NewItemPayloadValidator()
	assert.NoError(t, v.Validate(context.Background(), p, FieldType, FieldCard))
	assert.ErrorIs(t, v.Validate(context.Background(), p, FieldName), ErrEmptyName)
}

package validator

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type idParams struct {
	ID string `json:"id" binding:"required,objectid"`
}

func TestValidateStructObjectID(t *testing.T) {
	v := NewCustomValidator()

	assert.NoError(t, v.ValidateStruct(&idParams{ID: "64b7f0c2a1b2c3d4e5f60718"}))
	assert.NoError(t, v.ValidateStruct(&idParams{ID: "64B7F0C2A1B2C3D4E5F60718"}))

	for _, bad := range []string{"", "xyz", "64b7f0c2a1b2c3d4e5f6071", "64b7f0c2a1b2c3d4e5f6071z"} {
		err := v.ValidateStruct(&idParams{ID: bad})
		assert.Error(t, err, bad)
	}
}

func TestValidateStructIgnoresNonStruct(t *testing.T) {
	v := NewCustomValidator()
	assert.NoError(t, v.ValidateStruct(map[string]string{"a": "b"}))
	assert.NoError(t, v.ValidateStruct("plain"))
}

func TestRegisterTranslations(t *testing.T) {
	v := NewCustomValidator()
	validate := v.Engine().(*validator.Validate)

	uni := ut.New(en.New(), en.New())
	enTran, _ := uni.GetTranslator("en")
	require.NoError(t, RegisterTranslations(validate, enTran, nil))

	err := v.ValidateStruct(&idParams{ID: "nope"})
	require.Error(t, err)

	verrs, ok := err.(validator.ValidationErrors)
	require.True(t, ok)
	assert.Equal(t, "ID must be a valid note id", verrs[0].Translate(enTran))
}

func TestSetup(t *testing.T) {
	uni, err := Setup()
	require.NoError(t, err)
	_, ok := binding.Validator.(*CustomValidator)
	require.True(t, ok)

	err = binding.Validator.ValidateStruct(&idParams{ID: "nope"})
	require.Error(t, err)
	verrs, ok := err.(validator.ValidationErrors)
	require.True(t, ok)

	zhTran, found := uni.GetTranslator("zh")
	require.True(t, found)
	assert.Equal(t, "id必须是有效的笔记ID", verrs[0].Translate(zhTran))
}

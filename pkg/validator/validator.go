// Package validator adapts go-playground/validator to gin's binding engine
// and registers the custom tags used by the request DTOs.
package validator

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// TagObjectID validates a 24 hex character store identifier
// TagObjectID 校验 24 位十六进制的存储标识
const TagObjectID = "objectid"

// CustomValidator implements binding.StructValidator
type CustomValidator struct {
	once     sync.Once
	validate *validator.Validate
}

var _ binding.StructValidator = (*CustomValidator)(nil)

func NewCustomValidator() *CustomValidator {
	return &CustomValidator{}
}

// ValidateStruct validates structs and pointers to structs, other kinds pass
// ValidateStruct 校验结构体及其指针，其他类型直接通过
func (v *CustomValidator) ValidateStruct(obj interface{}) error {
	if kindOfData(obj) == reflect.Struct {
		v.lazyinit()
		if err := v.validate.Struct(obj); err != nil {
			return err
		}
	}
	return nil
}

func (v *CustomValidator) Engine() interface{} {
	v.lazyinit()
	return v.validate
}

func (v *CustomValidator) lazyinit() {
	v.once.Do(func() {
		v.validate = validator.New()
		v.validate.SetTagName("binding")
		_ = v.validate.RegisterValidation(TagObjectID, isObjectID)
	})
}

func kindOfData(data interface{}) reflect.Kind {
	value := reflect.ValueOf(data)
	valueType := value.Kind()
	if valueType == reflect.Ptr {
		valueType = value.Elem().Kind()
	}
	return valueType
}

func isObjectID(fl validator.FieldLevel) bool {
	_, err := bson.ObjectIDFromHex(fl.Field().String())
	return err == nil
}

// RegisterTranslations registers messages for the custom tags
// RegisterTranslations 注册自定义标签的翻译
func RegisterTranslations(validate *validator.Validate, enTran, zhTran ut.Translator) error {
	messages := []struct {
		trans ut.Translator
		text  string
	}{
		{enTran, "{0} must be a valid note id"},
		{zhTran, "{0}必须是有效的笔记ID"},
	}

	for _, m := range messages {
		if m.trans == nil {
			continue
		}
		text := m.text
		err := validate.RegisterTranslation(TagObjectID, m.trans,
			func(ut ut.Translator) error {
				return ut.Add(TagObjectID, text, true)
			},
			func(ut ut.Translator, fe validator.FieldError) string {
				t, _ := ut.T(TagObjectID, fe.Field())
				return t
			},
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// Setup installs the custom validator as gin's binding validator and registers
// en / zh translations, field names are taken from the json, uri or form tag
// Setup 安装自定义校验器并注册中英文翻译，字段名取自 json/uri/form 标签
func Setup() (*ut.UniversalTranslator, error) {
	customValidator := NewCustomValidator()
	binding.Validator = customValidator

	validate, ok := customValidator.Engine().(*validator.Validate)
	if !ok {
		return nil, errors.New("unexpected validator engine")
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "uri", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	uni := ut.New(en.New(), en.New(), zh.New())

	zhTran, _ := uni.GetTranslator("zh")
	enTran, _ := uni.GetTranslator("en")

	if err := zh_translations.RegisterDefaultTranslations(validate, zhTran); err != nil {
		return nil, err
	}
	if err := en_translations.RegisterDefaultTranslations(validate, enTran); err != nil {
		return nil, err
	}
	if err := RegisterTranslations(validate, enTran, zhTran); err != nil {
		return nil, err
	}

	return uni, nil
}

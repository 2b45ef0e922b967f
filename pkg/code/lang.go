package code

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// lang type, used to store English and Chinese text
// lang 类型，用来存储英文和中文文本
type lang struct {
	en    string // English // 英文
	zh_cn string // Chinese // 中文
}

// Default language is English // 默认语言为英文
var lng = "en"

const FALLBACK_LNG = "en"

// GetMessage method returns the corresponding message according to the current language
// GetMessage 方法根据当前语言返回相应的消息
func (l lang) GetMessage() string {
	if lng == "" {
		lng = FALLBACK_LNG
	}
	return l.message(lng)
}

// message returns the text for language, falling back to English
// message 返回指定语言的消息，无效时回退到英文
func (l lang) message(language string) string {
	val := reflect.ValueOf(l)
	field := val.FieldByName(language)
	if field.IsValid() && field.String() != "" {
		return field.String()
	}
	// If the specified language is invalid, return the message of the fallback language
	// 如果指定语言无效，返回回退语言的消息
	fallbackField := val.FieldByName(FALLBACK_LNG)
	if fallbackField.IsValid() && fallbackField.String() != "" {
		return fallbackField.String()
	}
	return fmt.Sprintf("No message available for language: %s", language)
}

// NormalizeLang turns zh-CN style tags into field names such as zh_cn
// NormalizeLang 将 zh-CN 形式的语言标记转换为 zh_cn
func NormalizeLang(language string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(language), "-", "_"))
}

// IsSupportedLang reports whether language has messages
func IsSupportedLang(language string) bool {
	for _, l := range GetSupportedLanguages() {
		if language == l {
			return true
		}
	}
	return false
}

// GetSupportedLanguages returns all languages supported by the lang type
// GetSupportedLanguages 函数返回 lang 类型支持的所有语言
func GetSupportedLanguages() []string {
	var languages []string
	typ := reflect.TypeOf(lang{})
	for i := 0; i < typ.NumField(); i++ {
		languages = append(languages, typ.Field(i).Name)
	}
	return languages
}

// SetGlobalDefaultLang sets the global default language
// 设置全局默认语言
func SetGlobalDefaultLang(language string) error {
	language = NormalizeLang(language)
	if IsSupportedLang(language) {
		lng = language
		return nil
	}
	// If the language is invalid, return an error and set it to the default language
	// 如果语言无效，返回错误并设置为默认语言
	lng = FALLBACK_LNG
	return errors.New("unsupported language type, set defaulting to " + FALLBACK_LNG)
}

// GetGlobalDefaultLang gets the global default language
// 获取全局默认语言
func GetGlobalDefaultLang() string {
	return lng
}

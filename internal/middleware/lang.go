package middleware

import (
	"strings"

	"github.com/haierkeys/note-crud-service/pkg/app"
	"github.com/haierkeys/note-crud-service/pkg/code"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

// LangWithTranslator 创建带翻译器的语言中间件（支持依赖注入）
// 只读取 lang 请求头，查询参数全部作为列表过滤条件
func LangWithTranslator(uni *ut.UniversalTranslator) gin.HandlerFunc {

	return func(c *gin.Context) {

		lang := code.NormalizeLang(c.GetHeader("lang"))

		trans, found := uni.GetTranslator(lang)
		if !found {
			// zh_cn -> zh
			trans, found = uni.GetTranslator(strings.SplitN(lang, "_", 2)[0])
		}
		if !found {
			trans, _ = uni.GetTranslator(code.FALLBACK_LNG)
		}
		c.Set("trans", trans)

		if code.IsSupportedLang(lang) {
			c.Set(app.LangKey, lang)
		}

		c.Next()
	}
}

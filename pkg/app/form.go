package app

import (
	"strings"

	"github.com/gin-gonic/gin"
	validatorV10 "github.com/go-playground/validator/v10"
)

// ValidError 单条参数校验错误
type ValidError struct {
	Key     string
	Message string
}

func (v *ValidError) Error() string {
	return v.Message
}

// ValidErrors 参数校验错误集合
type ValidErrors []*ValidError

func (v ValidErrors) Error() string {
	return strings.Join(v.Errors(), ",")
}

// Errors 获取全部错误文本
func (v ValidErrors) Errors() []string {
	var errs []string
	for _, err := range v {
		errs = append(errs, err.Error())
	}
	return errs
}

// ErrorsToString 拼接全部错误文本
func (v ValidErrors) ErrorsToString() string {
	return strings.Join(v.Errors(), ",")
}

// BindAndValid binds request params and collects validation errors.
// BindAndValid 绑定请求参数并收集校验错误。
func BindAndValid(c *gin.Context, v interface{}) (bool, ValidErrors) {
	var errs ValidErrors
	err := c.ShouldBind(v)
	if err != nil {
		verrs, ok := err.(validatorV10.ValidationErrors)
		if !ok {
			errs = append(errs, &ValidError{
				Key:     "body",
				Message: err.Error(),
			})
			return false, errs
		}

		for _, verr := range verrs {
			errs = append(errs, &ValidError{
				Key:     verr.Field(),
				Message: verr.Error(),
			})
		}
		return false, errs
	}

	return true, nil
}

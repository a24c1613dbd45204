package app

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidError 单个字段的校验错误
type ValidError struct {
	Key     string
	Message string
}

type ValidErrors []*ValidError

func (v *ValidError) Error() string {
	return v.Message
}

func (v ValidErrors) Error() string {
	return strings.Join(v.Errors(), ",")
}

func (v ValidErrors) Errors() []string {
	var errs []string
	for _, err := range v {
		errs = append(errs, err.Error())
	}
	return errs
}

func (v ValidErrors) ErrorsToString() string {
	return strings.Join(v.Errors(), ",")
}

// BindAndValid binds request parameters and collects validation failures
// BindAndValid 绑定请求参数并收集校验失败项
func BindAndValid(c *gin.Context, v interface{}) (bool, ValidErrors) {
	var errs ValidErrors
	err := c.ShouldBind(v)
	if err != nil {
		verrs, ok := err.(validator.ValidationErrors)
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

// Package app 提供应用容器，封装所有依赖和服务
package app

// 版本信息变量，由构建时注入
var (
	Version   string = "0.1.0"
	GitTag    string = ""
	BuildTime string = ""
)

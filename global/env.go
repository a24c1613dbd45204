package global

// Name 服务名称
var Name = "MyNote Sync Service"

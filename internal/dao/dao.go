// Package dao 实现数据访问层
package dao

import (
	"fmt"
	"os"
	"time"

	"github.com/learncodes/mynote-sync/global"
	"github.com/learncodes/mynote-sync/pkg/fileurl"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// Dao 数据访问对象，持有数据库连接和变更通知中心
type Dao struct {
	db    *gorm.DB
	watch *watchHub
}

// New 创建 Dao 实例
func New(db *gorm.DB) *Dao {
	return &Dao{
		db:    db,
		watch: newWatchHub(),
	}
}

func (d *Dao) DB() *gorm.DB {
	return d.db
}

// NewDBEngine 根据配置创建数据库引擎
func NewDBEngine(c global.Database) (*gorm.DB, error) {

	db, err := gorm.Open(dialector(c), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   c.TablePrefix, // 表名前缀
			SingularTable: true,          // 使用单数表名
		},
	})
	if err != nil {
		return nil, err
	}
	if global.Config != nil && global.Config.Server.RunMode == "debug" {
		db.Config.Logger = logger.Default.LogMode(logger.Info)
	}

	// 获取通用数据库对象 sql.DB，配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	sqlDB.SetMaxOpenConns(c.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Minute * 10)

	return db, nil
}

func dialector(c global.Database) gorm.Dialector {
	if c.Type == "mysql" {
		return mysql.Open(fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=%s&parseTime=%t&loc=Local",
			c.UserName,
			c.Password,
			c.Host,
			c.Name,
			c.Charset,
			c.ParseTime,
		))
	}

	if !fileurl.IsExist(c.Path) {
		fileurl.CreatePath(c.Path, os.ModePerm)
	}
	return sqlite.Open(c.Path)
}

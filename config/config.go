package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr    string `default:"" env:"APP_HOST"`
		Port          int    `default:"8080"  env:"APP_PORT"`
		BodyLimitMb   int    `default:"50" env:"APP_BODY_LIMIT_MB"`
		ErrNotifyAddr string `default:"" env:"APP_ERR_NOTIFY_ADDR"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"komreq" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret      string `default:"" env:"JWT_SECRET"`
		JWTExpireInSec int64  `default:"43200" env:"JWT_EXPIRE_IN_SEC"`
		Issuer         string `default:"KomReq" env:"JWT_ISSUER"`
		Audience       string `default:"KomReqClients" env:"JWT_AUDIENCE"`
	}
	Admin struct {
		UserName string `default:"admin" env:"ADMIN_USER_NAME"`
		Email    string `default:"" env:"ADMIN_EMAIL"`
		Password string `default:"" env:"ADMIN_PASSWORD"`
		FullName string `default:"Администратор" env:"ADMIN_FULL_NAME"`
	}
	Storage struct {
		Type     string `default:"local" env:"STORAGE_TYPE"` // local | s3
		LocalDir string `default:"Uploads" env:"STORAGE_LOCAL_DIR"`
	}
	S3 struct {
		Endpoint        string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		BucketName      string `default:"komreq" env:"S3_BUCKET_NAME"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
	}
	Notification struct {
		EmailEnabled     *bool `default:"false" env:"NOTIFICATION_EMAIL_ENABLED"`
		EmailIntervalSec int   `default:"60" env:"NOTIFICATION_EMAIL_INTERVAL_SEC"`
		EmailDelaySec    int   `default:"300" env:"NOTIFICATION_EMAIL_DELAY_SEC"`
	}
	Report struct {
		FontDir string `default:"" env:"REPORT_FONT_DIR"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}

package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	FirebaseProject string
	Environment     string

	AdminEmails []string

	BotToken        string
	BotUsername     string
	ApproverChatIDs []int64

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string

	VerifyRedirectURL string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		Environment:     getEnv("ENVIRONMENT", "development"),

		AdminEmails: getEnvAsList("ADMIN_EMAILS"),

		BotToken:        getEnv("BOT_TOKEN", ""),
		BotUsername:     getEnv("BOT_USERNAME", "ticketboom_bot"),
		ApproverChatIDs: getEnvAsInt64List("APPROVER_CHAT_IDS"),

		SMTPHost:     getEnv("SMTP_HOST", "smtp.yandex.com"),
		SMTPPort:     getEnvAsInt("SMTP_PORT", 465),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		MailFrom:     getEnv("MAIL_FROM", ""),

		VerifyRedirectURL: getEnv("VERIFY_REDIRECT_URL", "https://ticketboom.vercel.app/verified"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.Atoi(value)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return nil
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

func getEnvAsInt64List(key string) []int64 {
	var ids []int64
	for _, item := range getEnvAsList(key) {
		id, err := strconv.ParseInt(item, 10, 64)
		if err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

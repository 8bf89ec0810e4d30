package config

import "os"

func BasePath() string {
	return os.Getenv("APP_BASE_PATH")
}

func Port() string {
	return os.Getenv("APP_PORT")
}

// LogFile is the optional rotating log sink path; empty means stderr only.
func LogFile() string {
	return os.Getenv("LOG_FILE")
}

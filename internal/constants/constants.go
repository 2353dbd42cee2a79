package constants

const (
	AppName            = "streaks"
	DefaultKeyringUser = "database-connection"
	OwnerKeyringUser   = "owner-identity"
	DefaultConfigPath  = "~/.config/streaks/streaks.db"
	DefaultOwner       = "local"
	Version            = "v0.3.0"

	// DateFormat is the day key format used for every completion log (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// MonthFormat identifies a calendar month (YYYY-MM)
	MonthFormat = "2006-01"

	// StreakLookbackDays bounds how far back the streak walk may go
	StreakLookbackDays = 200

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "streaks-"
	BackupFileSuffix = ".db"

	// Log file constants
	LogDirName     = "logs"
	LogFileName    = "streaks.log"
	LogMaxSizeMB   = 10
	LogMaxBackups  = 3
	LogMaxAgeDays  = 28
	DefaultQuote   = "Now I am become Death, the destroyer of worlds"
	NoHabitsNotice = "No habits in this goal yet."
)

package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
)

// UserAgent identifies the HTTP client towards the records backend.
var UserAgent = "Priroda-Razuma/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Природа Разума"
	AppBinary         = "priroda"
	AppID             = "com.github.tartampluch.priroda-razuma"
	KeyringService    = "com.github.tartampluch.priroda-razuma"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "priroda.log"
	EnvPrefix         = "PRIRODA"
	ConfigFileName    = "config"
	ConfigFileType    = "yaml"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// Log rotation limits (lumberjack).
const (
	LogMaxSizeMB  = 10
	LogMaxBackups = 3
	LogMaxAgeDays = 28
)

// -----------------------------------------------------------------------------
// CLI Commands, Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagConfig    = "config"
	FlagDebug     = "debug"
	FlagPage      = "page"
	FlagSearch    = "search"
	FlagToday     = "today"
	FlagOutput    = "output"
	FlagShortConf = "c"

	FlagDescConfig = "Path to the YAML configuration file"
	FlagDescDebug  = "Enable debug logging"
	FlagDescPage   = "Page number (1-based)"
	FlagDescSearch = "Case-insensitive search on the name column"
	FlagDescToday  = "Override today's date (YYYY-MM-DD)"
	FlagDescOutput = "Write output to a file instead of stdout"

	CmdShortRoot     = "Patient records toolkit for Природа Разума"
	CmdShortServe    = "Sync patients and serve the birthday feed over HTTP"
	CmdShortAge      = "Print the age for a birth date (YYYY-MM-DD)"
	CmdShortCalendar = "Print the month grid used by the birth-date picker"
	CmdShortPatients = "List one page of patients"
	CmdShortExport   = "Export patients as vCard 4.0"
	CmdShortVersion  = "Show application version"
	CmdShortLogin    = "Sign in to the records backend and store the refresh token"
	CmdShortLogout   = "Forget the stored refresh token"

	CmdUseServe    = "serve"
	CmdUseAge      = "age BIRTH_DATE"
	CmdUseCalendar = "calendar [YYYY-MM]"
	CmdUsePatients = "patients"
	CmdUseExport   = "export"
	CmdUseVersion  = "version"
	CmdUseLogin    = "login"
	CmdUseLogout   = "logout"

	MsgVersionOutput = "%s version %s (%s/%s)\n"
	FormatAgeOutput  = "%s: %s\n"
	FormatLoggedIn   = "%s (%s)\n"
	FormatPatientRow = "%5d  %-40s  %s  %s\n"
	FormatGridHeader = "%04d-%02d\n"
	FormatGridLabel  = " %s "
	FormatGridCell   = " %2d "
	FormatGridToday  = "[%2d]"
	GridBlank        = "    "
	MonthArgLayout   = "2006-01"
	PasswordPrompt   = "Password: "

	// EnvPassword lets non-interactive runs sign in when no refresh token is stored.
	EnvPassword = "PRIRODA_PASSWORD"
)

// Record management commands (documents, users, roles, patient forms).
const (
	FlagStatus      = "status"
	FlagRole        = "role"
	FlagPatient     = "patient"
	FlagDir         = "dir"
	FlagLastName    = "last-name"
	FlagFirstName   = "first-name"
	FlagPatronymic  = "patronymic"
	FlagBirthDate   = "birth-date"
	FlagUserLogin   = "user-login"
	FlagEmail       = "email"
	FlagInactive    = "inactive"
	FlagName        = "name"
	FlagDescription = "description"

	FlagDescStatus      = "Filter by account status: all, active or inactive"
	FlagDescRole        = "Filter by role id, or the role of the account"
	FlagDescPatient     = "Filter by patient id"
	FlagDescDir         = "Filter by document folder"
	FlagDescLastName    = "Last name (Cyrillic)"
	FlagDescFirstName   = "First name (Cyrillic)"
	FlagDescPatronymic  = "Patronymic (Cyrillic, optional)"
	FlagDescBirthDate   = "Birth date (YYYY-MM-DD)"
	FlagDescUserLogin   = "Account login"
	FlagDescEmail       = "E-mail address (optional)"
	FlagDescInactive    = "Create or mark the account as inactive"
	FlagDescName        = "Role name"
	FlagDescDescription = "Role description (optional)"

	CmdShortDocuments = "List one page of documents"
	CmdShortUsers     = "List one page of staff accounts"
	CmdShortRoles     = "List one page of roles"
	CmdShortPassword  = "Change the password of the signed-in account"
	CmdShortAdd       = "Create a record"
	CmdShortEdit      = "Edit a record"
	CmdShortDelete    = "Delete a record"

	CmdUseDocuments = "documents"
	CmdUseUsers     = "users"
	CmdUseRoles     = "roles"
	CmdUsePassword  = "password"
	CmdUseAdd       = "add"
	CmdUseEdit      = "edit ID"
	CmdUseDelete    = "delete ID"

	FormatDocumentRow = "%5d  %-40s  %5d  %s\n"
	FormatUserRow     = "%5d  %-40s  %-20s  %5d  %s\n"
	FormatRoleRow     = "%5d  %-30s  %s\n"
	FormatFieldError  = "%s: %s\n"
	FormatSaved       = "%5d  %s\n"
	FormatDeleted     = "deleted %d  %s\n"
	FormatDotCurrent  = "[%d]"
	DotGap            = "…"

	OldPasswordPrompt     = "Current password: "
	NewPasswordPrompt     = "New password: "
	ConfirmPasswordPrompt = "Repeat new password: "
	PasswordChanged       = "password changed"
)

// -----------------------------------------------------------------------------
// Dates & Calendar
// -----------------------------------------------------------------------------

const (
	// DateSeparator splits the canonical wire form YYYY-MM-DD.
	DateSeparator = "-"
	// DateParts is the number of fields in a canonical date.
	DateParts = 3

	// FormatDateISO renders YYYY-MM-DD, month and day zero-padded.
	FormatDateISO = "%d-%02d-%02d"
	// FormatDateDisplay renders DD.MM.YYYY for display-only contexts.
	FormatDateDisplay = "%02d.%02d.%d"

	// DateLayoutISO is the time package layout of the canonical form.
	DateLayoutISO = "2006-01-02"

	MonthsPerYear = 12
	DaysPerWeek   = 7

	// BirthYearSpan is how many years back the birth-date picker offers.
	BirthYearSpan = 120

	DefaultLeapYear = 2000
)

// WeekdayLabels are the Monday-first column headers of the month grid.
var WeekdayLabels = [DaysPerWeek]string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"}

// Russian numeral agreement for ages.
const (
	AgeSuffixOne  = "год"
	AgeSuffixFew  = "года"
	AgeSuffixMany = "лет"
	FormatAge     = "%d %s"
)

// -----------------------------------------------------------------------------
// Lists & Pagination
// -----------------------------------------------------------------------------

const (
	// DefaultPageSize is the number of rows on every list screen.
	DefaultPageSize = 10

	// PageDotsVisible is the width of the page-dot window.
	PageDotsVisible = 5
	// PageDotsMinPages: dots are only rendered above this page count.
	PageDotsMinPages = 3

	FilterAll      = "all"
	StatusActive   = "active"
	StatusInactive = "inactive"

	FilterKeyPatient   = "patient"
	FilterKeyDirectory = "directory"
	FilterKeyStatus    = "status"
	FilterKeyRole      = "role"

	FIOSeparator = " "
)

// -----------------------------------------------------------------------------
// Form Validation Limits
// -----------------------------------------------------------------------------

const (
	NameMinLen     = 2
	NameMaxLen     = 100
	LoginMinLen    = 5
	LoginMaxLen    = 50
	PasswordMinLen = 5
	PasswordMaxLen = 50
	EmailMaxLen    = 255
	RoleNameMinLen = 3
	RoleNameMaxLen = 255

	PatternCyrillicName = `^[а-яА-ЯёЁ\- ]+$`
	PatternLoginChars   = `^[a-zA-Z0-9]+$`
	PatternLoginLetter  = `[a-zA-Z]`
	PatternLoginStrip   = `[^a-zA-Z0-9]`
	PatternPassword     = `^[a-zA-Z0-9!@#$%^&*()_+\-=\[\]{};':"\\|,.<>/?]+$`
	PatternEmail        = `^[^\s@]+@[^\s@]+\.[^\s@]+$`
	PatternRoleName     = `^[a-zA-Zа-яА-ЯёЁ0-9\s-]+$`
)

// Form field identifiers.
const (
	FieldLastName    = "lastName"
	FieldFirstName   = "firstName"
	FieldPatronymic  = "patronymic"
	FieldBirthDate   = "birthDate"
	FieldLogin       = "login"
	FieldPassword    = "password"
	FieldEmail       = "email"
	FieldRoleName    = "roleName"
	FieldOldPassword = "oldPassword"
	FieldNewPassword = "newPassword"
	FieldConfirm     = "confirmPassword"
	FieldRole        = "role"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyAgeYears        = "age_years"     // Requires Count
	TKeyEvtSummary      = "event_summary" // Requires Name
	TKeyEvtSummaryAge   = "event_summary_age"
	TKeyEvtSummaryBirth = "event_summary_birth"
	TKeyPageFooter      = "page_footer" // Requires Page, Count
	TKeyListEmpty       = "list_empty"

	// Date validation
	TKeyErrBirthRequired = "err_birth_required"
	TKeyErrDateFormat    = "err_date_format"
	TKeyErrDateInvalid   = "err_date_invalid"
	TKeyErrDateFuture    = "err_date_future"

	// Page input
	TKeyErrPageEmpty  = "err_page_empty"
	TKeyErrPageNumber = "err_page_number"
	TKeyErrPageRange  = "err_page_range" // Requires Count

	// Form fields
	TKeyErrRequired      = "err_required"
	TKeyErrNameMin       = "err_name_min"
	TKeyErrNameMax       = "err_name_max"
	TKeyErrCyrillic      = "err_cyrillic"
	TKeyErrLoginLength   = "err_login_length"
	TKeyErrLoginChars    = "err_login_chars"
	TKeyErrPassLength    = "err_password_length"
	TKeyErrPassChars     = "err_password_chars"
	TKeyErrPassMismatch  = "err_password_mismatch"
	TKeyErrPassSame      = "err_password_same"
	TKeyErrEmailFormat   = "err_email_format"
	TKeyErrEmailMax      = "err_email_max"
	TKeyErrRoleName      = "err_role_name"
	TKeyErrRoleSelect    = "err_role_select"
	TKeyErrUnknown       = "err_unknown"
	TKeyErrLoadPatients  = "err_load_patients"
	TKeyErrSessionExpire = "err_session_expired"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	SourceModeWeb        = "web"
	SourceModeLocal      = "local"
	DefaultPort          = "18080"
	DefaultRefreshMin    = 60
	DefaultLanguage      = "ru"
	DefaultBackendURL    = "http://localhost:8000/api/v1"
	DefaultReminderValue = 1
	UIDSalt              = "priroda-razuma-v1-"
	TokenExpirySkew      = 30 * time.Second
)

// SupportedLanguages defines the list of available languages (ISO 639-1).
var SupportedLanguages = []string{"ru", "en"}

// Settings keys (viper / YAML / PRIRODA_* env).
const (
	KeyBackendURL      = "backend.url"
	KeyBackendLogin    = "backend.login"
	KeySourceMode      = "source.mode"
	KeySourceLocalPath = "source.local_path"
	KeyServerPort      = "server.port"
	KeyRefreshMin      = "server.refresh_interval_min"
	KeyPageSize        = "ui.page_size"
	KeyLanguage        = "ui.language"
	KeyLogFile         = "log.file"
	KeyLogLevel        = "log.level"
	KeyReminderEnabled = "reminder.enabled"
	KeyReminderValue   = "reminder.value"
	KeyReminderUnit    = "reminder.unit"
	KeyReminderDir     = "reminder.direction"
)

// ISO8601 Duration Components for Reminders
const (
	ISOPeriodPrefix   = "P"
	ISONegativePrefix = "-P"
	ISOTime           = "T"
	ISODay            = "D"
	ISOHour           = "H"
	ISOMinute         = "M"
)

// Reminder Units & Directions
const (
	UnitDays    = "d"
	UnitHours   = "h"
	UnitMinutes = "m"
	DirBefore   = "before"
	DirAfter    = "after"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	ICalVersion   = "2.0"
	ICalProdid    = "-//Priroda Razuma//Birthdays//RU"
	ICalCalName   = "Дни рождения пациентов"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "priroda-razuma"

	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropRefresh     = "REFRESH-INTERVAL"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	VCardVersion   = "4.0"
	VCardPatientID = "X-PATIENT-ID"

	DefaultICalRefresh = 1 * time.Hour

	UIDHashLength   = 16
	FormatHashInput = "%d|%s|%s|%s"
	FormatUID       = "%s-%d@%s"

	// StubVCalendar is the minimal valid iCalendar object used when no events are found.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	ExtVCF = ".vcf"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	ShutdownTimeout     = 5 * time.Second
	ServerReadTimeout   = 10 * time.Second
	ServerWriteTimeout  = 30 * time.Second
	ServerIdleTimeout   = 60 * time.Second
	RetryAfterSeconds   = "10"
	AllowedMethods      = "GET, HEAD"
	MaxHTTPResponseSize = 32 * 1024 * 1024 // 32MB
	MaxErrorBodySize    = 4 * 1024
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	AddrSeparator       = ":"

	RouteRoot        = "/"
	RouteAPIPatients = "/api/patients"
	RouteMetrics     = "/metrics"
	RouteFeed        = "feed"
	QueryPage        = "page"
	QuerySearch      = "q"

	PathLogin     = "/auth/login"
	PathRefresh   = "/auth/refresh"
	PathPatients  = "/patients"
	PathDocuments = "/documents"
	PathUsers     = "/users"
	PathRoles     = "/roles"
	PathPassword  = "/password"

	FormUsername     = "username"
	FormPassword     = "password"
	FormRefreshToken = "refresh_token"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderAccept          = "Accept"
	HeaderAuthorization   = "Authorization"
	HeaderRequestID       = "X-Request-ID"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderUserAgent       = "User-Agent"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	BearerPrefix = "Bearer "

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeJSON            = "application/json"
	MimeJSONUTF8        = "application/json; charset=utf-8"
	MimeForm            = "application/x-www-form-urlencoded"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Metrics
// -----------------------------------------------------------------------------

const (
	MetricsNamespace     = "priroda"
	MetricRequestsName   = "http_requests_total"
	MetricRequestsHelp   = "HTTP requests served by the feed server."
	MetricSyncName       = "sync_runs_total"
	MetricSyncHelp       = "Patient synchronization runs by outcome."
	MetricLabelRoute     = "route"
	MetricLabelCode      = "code"
	MetricLabelOutcome   = "outcome"
	MetricOutcomeSuccess = "success"
	MetricOutcomeError   = "error"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrLocalPathEmpty   = "configuration error: local path is empty"
	ErrSourceMissing    = "internal error: patient source is not initialized"
	ErrModeUnsupport    = "configuration error: unsupported source mode"
	ErrBackendURLEmpty  = "configuration error: backend URL is empty"
	ErrServerStartup    = "server startup failed"
	ErrServerShutdown   = "server shutdown failed"
	ErrPortRequired     = "server port is required"
	ErrPortNumber       = "server port must be a number"
	ErrPortRange        = "server port must be between 1 and 65535"
	ErrPageSize         = "page size must be positive"
	ErrRefreshInterval  = "refresh interval must be positive"
	ErrLanguage         = "unsupported language"
	ErrReminderUnit     = "unsupported reminder unit"
	ErrReminderDir      = "unsupported reminder direction"
	ErrInvalidURL       = "invalid URL structure"
	ErrProtocol         = "unsupported protocol scheme (http/https only)"
	ErrVCardParse       = "failed to read patient source"
	ErrVCardEncode      = "failed to encode vCard data"
	ErrICalEncode       = "failed to encode iCalendar data"
	ErrDateParse        = "unable to parse date"
	ErrDateInvalid      = "date does not exist in the calendar"
	ErrDateFuture       = "date is in the future"
	ErrBirthRequired    = "birth date is required"
	ErrPageEmpty        = "page number is empty"
	ErrPageNumber       = "page number is not a number"
	ErrPageRange        = "page number out of range"
	ErrLogFile          = "failed to open log file"
	ErrCacheDir         = "could not determine user cache dir"
	ErrCreateDir        = "could not create app cache dir"
	ErrAppFailed        = "application failed unexpectedly"
	ErrFormInvalid      = "form has invalid fields"
	ErrInvalidID        = "invalid record id"
	ErrDirectory        = "unknown document folder"
	ErrWriteResp        = "failed to write response body"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
	ErrConfigRead       = "failed to read config"
	ErrConfigDecode     = "failed to unmarshal config"
	ErrConfigInvalid    = "invalid config"
	ErrRequestBuild     = "failed to create request"
	ErrRequestSend      = "network error during request"
	ErrResponseDecode   = "failed to decode response"
	ErrRequestEncode    = "failed to encode request body"
	ErrUnexpectedStatus = "backend returned unexpected status"
	ErrNotAuthenticated = "not authenticated"
	ErrTokenParse       = "failed to parse access token"
	ErrKeyringStore     = "failed to store refresh token"
	ErrKeyringLoad      = "failed to load refresh token"
	ErrLoginEmpty       = "login is empty"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Feed initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
	HTTPMsgBadPage      = "Invalid page number"
)

// -----------------------------------------------------------------------------
// Fallbacks & Log Messages
// -----------------------------------------------------------------------------

const (
	FallbackSummaryAge   = "День рождения: %s (%s)"
	FallbackSummaryBirth = "День рождения: %s (рождение)"
	FallbackName         = "Без имени"

	MsgSyncStarted   = "Synchronization started"
	MsgSyncFinished  = "Synchronization finished"
	MsgSyncFailed    = "Synchronization failed"
	MsgWorkerStart   = "Background worker started"
	MsgWorkerStop    = "Worker stopping due to context cancellation"
	MsgAppStop       = "Application stopped gracefully"
	MsgAppStarting   = "Starting application"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedDate   = "Skipping patient with invalid birth date"
	MsgGenSuccess    = "Birthday feed generated"
	MsgBdayToday     = "Patient birthday today"
	MsgServerListen  = "HTTP server listening"
	MsgServerStop    = "Shutting down HTTP server..."
	MsgCacheUpdated  = "Feed cache updated"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgLoggedIn      = "Logged in"
	MsgTokenRefresh  = "Access token refreshed"
	MsgRequestDone   = "Backend request completed"
	MsgConfigDefault = "No config file found, using defaults"
	MsgTokenMissing  = "No stored refresh token"
	MsgSyncRequested = "Synchronization requested"
	MsgSessionResume = "Session restored from keyring"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyMethod    = "method"
	LogKeyStatus    = "status_code"
	LogKeyRequestID = "request_id"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyMode      = "mode"
	LogKeyInterval  = "interval"
	LogKeyUser      = "user"
	LogKeyUserID    = "user_id"
	LogKeyTotal     = "total_patients"
	LogKeyFound     = "birthdays_found"
	LogKeyToday     = "birthdays_today"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyValue     = "value"
	LogKeyStats     = "stats"
	LogKeyCount     = "count"
	LogKeyName      = "name"
	LogKeyDOB       = "date_of_birth"
	LogKeyDuration  = "duration_ms"
	LogKeyPage      = "page"
	LogKeyManual    = "manual"

	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompEngine  = "engine"
	CompServer  = "server"
	CompBackend = "backend"
	CompSession = "session"
	CompWorker  = "worker"
	CompMain    = "main"
	CompI18n    = "i18n"
	CompConfig  = "config"
)

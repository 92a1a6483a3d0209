package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixGarageStats  CachePrefix = "GARAGE_STATS_"
	CachePrefixGarageAlerts CachePrefix = "GARAGE_ALERTS_"
)

// RedisKeyPrefix namespaces every key the service writes to a shared Redis.
const RedisKeyPrefix = "pitwall:"

const (
	DefaultActivityLimit     = 5
	MaxActivityLimit         = 50
	NotificationPageSize     = 20
	DefaultPublicVehicleList = 24
	FleetFanOutLimit         = 4
)

const (
	NotificationTypeLike    = "like"
	NotificationTypeComment = "comment"
)

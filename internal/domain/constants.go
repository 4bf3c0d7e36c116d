package domain

// User roles. Every new registration starts as a member.
const (
	RoleMember = "membro"
	RoleAdmin  = "admin"
)

// Temporal buckets for event listing, relative to the start of the current
// day. An event dated today is always "próximos", never "passados".
const (
	BucketAll      = "todos"
	BucketUpcoming = "proximos"
	BucketPast     = "passados"
)

// Event categories, mirroring the fixed set the app shows as filter chips.
var EventCategories = []string{
	"culto",
	"estudo",
	"jovens",
	"criancas",
	"mulheres",
	"homens",
	"casais",
	"acao_social",
}

// ValidCategory reports whether c is one of the known event categories.
func ValidCategory(c string) bool {
	for _, known := range EventCategories {
		if c == known {
			return true
		}
	}
	return false
}

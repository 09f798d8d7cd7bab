package shared

// AvailableModules is the static catalog of assignable application modules.
// Profiles store a subset; admins implicitly hold all of them.
var AvailableModules = []string{
	"dashboard", "resources", "products", "clients", "offices",
	"parking-storage", "monthly-services", "quotes", "comisionistas",
	"tickets", "requests", "reports", "users",
}

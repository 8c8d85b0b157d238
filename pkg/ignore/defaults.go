package ignore

// DefaultPatterns are applied to every walk unless disabled in config.
var DefaultPatterns = []string{
	// IDE and editor
	".idea/", ".vscode/", ".atom/", "*.sublime-project", "*.sublime-workspace",
	// Version control
	".git/", ".svn/", ".hg/",
	// Build output
	"build/", "dist/", "out/", "target/", "bin/", "obj/",
	// Package managers
	"node_modules/", "vendor/", "bower_components/", "jspm_packages/",
	// Temp and cache
	"tmp/", "temp/", ".cache/", "__pycache__/",
	// OS files
	".DS_Store", "Thumbs.db",
	// Logs
	"*.log", "logs/",
	// Environment and local config
	".env", ".env.local", "config.local.js",
	// Coverage and test reports
	"coverage/", ".nyc_output/", ".pytest_cache/",
	// Generated docs
	"docs/_build/", "site/",
	// Lock files
	"package-lock.json", "yarn.lock", "Pipfile.lock", "poetry.lock",
	// Databases
	"*.sqlite", "*.db",
	// Backups and swap files
	"*.bak", "*.swp", "*~",
	// Compiled Python
	"*.pyc", "*.pyo", "*.pyd",
	".ipynb_checkpoints/",
	".next/",
	".angular/",
	".github/",
}

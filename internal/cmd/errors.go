package cmd

import "errors"

var errNoDatabase = errors.New("no database configured: set --database-url or LINKEDINSCRAPER_DATABASE_URL")

package main

import (
	cmd "github.com/labible/sitemap/cmd/sitemap"
)

func main() {
	cmd.Execute()
}

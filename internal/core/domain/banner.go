package domain

import "fmt"

// DefaultBannerSpec returns the hello.js license banner.
func DefaultBannerSpec() BannerSpec {
	return BannerSpec{
		Project:   "hellojs",
		Author:    "Andrew Dodson",
		License:   "MIT",
		URL:       "https://adodson.com/hello.js/LICENSE",
		FirstYear: 2012,
	}
}

// FormatBanner renders the banner comment for the given version and year,
// terminated by a newline.
func FormatBanner(spec BannerSpec, version string, year int) string {
	return fmt.Sprintf("/*! %s v%s - (c) %d-%d %s - %s %s */\n",
		spec.Project, version, spec.FirstYear, year, spec.Author, spec.License, spec.URL)
}

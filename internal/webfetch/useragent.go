// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package webfetch

import "math/rand"

// UserAgents are desktop browser signatures rotated per request, not per
// session, to avoid trivially fingerprintable traffic. Shared by every
// stage that talks to the open web.
var UserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:120.0) Gecko/20100101 Firefox/120.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:120.0) Gecko/20100101 Firefox/120.0",
	"Mozilla/5.0 (X11; Linux x86_64; rv:120.0) Gecko/20100101 Firefox/120.0",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:119.0) Gecko/20100101 Firefox/119.0",
}

// RandomUserAgent returns a signature chosen uniformly at random.
func RandomUserAgent() string {
	return UserAgents[rand.Intn(len(UserAgents))]
}

// setBrowserHeaders applies the headers a desktop browser would send.
func setBrowserHeaders(h map[string][]string) {
	set := func(k, v string) { h[k] = []string{v} }
	set("User-Agent", RandomUserAgent())
	set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	set("Accept-Language", "en-US,en;q=0.5")
	set("DNT", "1")
	set("Connection", "keep-alive")
	set("Upgrade-Insecure-Requests", "1")
}

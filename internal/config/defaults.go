package config

import _ "embed"

//go:embed defaults/cookieshift.yaml
var defaultCookieShiftYAML []byte

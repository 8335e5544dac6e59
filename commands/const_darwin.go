package commands

const (
	_var = "/usr/local/var/com.github.surveyforms"

	DEFAULT_WORKDIR = _var
)

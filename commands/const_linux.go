package commands

const (
	_var = "/usr/local/var/surveyforms"

	DEFAULT_WORKDIR = _var
)

package surveyforms

const VERSION = "v0.1.0"

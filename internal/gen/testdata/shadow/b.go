package shadow

var thing = "taken"

func name() string { return thing }

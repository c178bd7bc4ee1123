package encode

type EncodeConfig struct {
	JSON   bool
	Colors *Colors
}

type EncodeOption func(*EncodeConfig)

func EncodeJSON(v bool) EncodeOption {
	return func(c *EncodeConfig) { c.JSON = v }
}

func EncodeColors(colors *Colors) EncodeOption {
	return func(c *EncodeConfig) { c.Colors = colors }
}

package config

// Validate 校验关键参数；环容量错误属于配置错误，必须在启动时失败，
// 不允许悄悄修正为最近的合法值。
func Validate(cfg AppConfig) error {
	if cfg.Bench.Messages <= 0 {
		return ErrInvalid("bench.messages must be > 0")
	}
	if cfg.Bench.Mode != "ring" && cfg.Bench.Mode != "loopback" {
		return ErrInvalid("bench.mode must be ring or loopback")
	}
	if len(cfg.Bench.Symbols) == 0 {
		return ErrInvalid("bench.symbols must not be empty")
	}
	for _, sym := range cfg.Bench.Symbols {
		if len(sym) > 8 {
			return ErrInvalid("bench.symbols entries must be at most 8 bytes")
		}
		for i := 0; i < len(sym); i++ {
			b := sym[i]
			if !(b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z') {
				return ErrInvalid("bench.symbols entries must be ASCII alphanumeric")
			}
		}
	}
	if cfg.Bench.Loop && cfg.Bench.ReportIntervalMs <= 0 {
		return ErrInvalid("bench.reportIntervalMs must be > 0 in loop mode")
	}
	if c := cfg.Ring.Capacity; c < 2 || c&(c-1) != 0 {
		return ErrInvalid("ring.capacity must be a power of two and at least 2")
	}
	if cfg.Sampler.Capacity < 1 {
		return ErrInvalid("sampler.capacity must be > 0")
	}
	return nil
}

// ErrInvalid 用于参数验证错误。
type ErrInvalid string

func (e ErrInvalid) Error() string { return string(e) }

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Identity.UserPoolID == "" || cfg.Identity.ClientID == "" {
		return ErrInvalidIdentityConfigs
	}

	if cfg.Storage.RunsTable == "" || cfg.Storage.TargetsTable == "" || cfg.Storage.UsersTable == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

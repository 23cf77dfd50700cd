/*
Package config loads configuration for entitystate tooling.

Sources, lowest precedence first:
  - built-in defaults (Default)
  - an optional YAML file
  - the environment, after .env files have been merged into it

Example YAML:

	logging:
	  level: debug
	  format: json
	registry:
	  map_capacity: 16
	format:
	  truncate_length: 60

Environment variables: ENTITYSTATE_LOG_LEVEL, ENTITYSTATE_LOG_FORMAT,
ENTITYSTATE_MAP_CAPACITY, ENTITYSTATE_TRUNCATE_LENGTH.

Wiring a registry in a service:

	cfg, err := config.Load("service.yaml")
	if err != nil {
	    return err
	}
	logger, err := logging.New(cfg.Logging, os.Stderr)
	if err != nil {
	    return err
	}
	reg := cfg.NewRegistry(logger)
	entitystate.InitDefault(reg)

	dao, err := entitystate.NewBase[Customer](reg)
*/
package config

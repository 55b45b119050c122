// Package environment names the deployment environment (development,
// staging, production) and carries it through request contexts.
//
// Parse normalises configuration values and Middleware stores the
// environment in every request context:
//
//	env := environment.Parse(cfg.AppEnv)
//	r.Use(environment.Middleware(env))
//	if environment.IsProduction(r.Context()) { ... }
package environment

// Package redis connects to Redis with retries and exposes a readiness check.
//
// The contact service uses Redis for the cross-replica submission guard. When
// REDIS_URL is empty, Config.Enabled reports false and the service keeps the
// guard in process memory instead.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	ready := redis.Healthcheck(client)
//
// All errors wrap a package sentinel with errors.Join so callers can test
// them with errors.Is.
package redis

// Package config loads client settings for the mws command.
//
// Settings come from an optional YAML file and are then overridden by
// environment variables with the MWS_ prefix:
//
//	host: mws-eu.amazonservices.com
//	access_key_id: AKIAEXAMPLE
//	seller_id: A1SELLER
//	timeout: 45s
//
//	MWS_SECRET_ACCESS_KEY=... mws request GetServiceStatus
package config

package config

import "golang.org/x/crypto/bcrypt"

// TestPassword is the plaintext matching the admin hash LoadTestConfig sets.
const TestPassword = "test-password"

// LoadTestConfig fills AppConfig with self-contained values for package
// tests: an in-memory database and a known admin credential pair.
func LoadTestConfig() error {
	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		return err
	}

	AppConfig = Config{
		Port:              "3000",
		JWTSecret:         "test-secret",
		DBPath:            "file::memory:?cache=shared",
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
		TokenExpiry:       "1h",
	}
	return nil
}

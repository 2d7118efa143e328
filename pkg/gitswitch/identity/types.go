package identity

// Identity is a named git author with the SSH key used to authenticate as them.
type Identity struct {
	Username   string `yaml:"username" json:"username"`
	Email      string `yaml:"email" json:"email"`
	SshKeyPath string `yaml:"ssh_key_path" json:"ssh_key_path"`
	// SshKeyHash is the digest of the key file when the identity was last
	// added. It is not updated when the key file changes afterwards.
	SshKeyHash string `yaml:"ssh_key_hash" json:"ssh_key_hash"`
}

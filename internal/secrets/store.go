package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// per-user token store (file, 0600) with AES-GCM obfuscation, keyed by API
// host. Not a replacement for OS keychains but keeps tokens out of the
// plain-text config.

const fileName = "tokens.json"

// ErrNoToken is returned when no token is stored for a host.
var ErrNoToken = errors.New("secrets: no token stored")

type tokenFile struct {
	Tokens map[string]string `json:"tokens"` // host -> base64(ciphertext)
}

// StoreToken saves token for the API at baseURL.
func StoreToken(baseURL, token string) error {
	host, err := hostKey(baseURL)
	if err != nil {
		return err
	}
	if strings.TrimSpace(token) == "" {
		return fmt.Errorf("secrets: empty token")
	}
	path, err := filePath()
	if err != nil {
		return err
	}
	tf, err := load(path)
	if err != nil {
		return err
	}
	if tf.Tokens == nil {
		tf.Tokens = map[string]string{}
	}
	ct, err := encrypt([]byte(strings.TrimSpace(token)))
	if err != nil {
		return err
	}
	tf.Tokens[host] = base64.StdEncoding.EncodeToString(ct)
	return save(path, tf)
}

// FetchToken returns the token stored for baseURL, or ErrNoToken.
func FetchToken(baseURL string) (string, error) {
	host, err := hostKey(baseURL)
	if err != nil {
		return "", err
	}
	path, err := filePath()
	if err != nil {
		return "", err
	}
	tf, err := load(path)
	if err != nil {
		return "", err
	}
	enc, ok := tf.Tokens[host]
	if !ok {
		return "", ErrNoToken
	}
	raw, err := base64.StdEncoding.DecodeString(enc)
	if err != nil {
		return "", fmt.Errorf("secrets: decode token: %w", err)
	}
	pt, err := decrypt(raw)
	if err != nil {
		return "", fmt.Errorf("secrets: decrypt token: %w", err)
	}
	return string(pt), nil
}

// DeleteToken forgets the token for baseURL. Deleting a missing token is
// not an error.
func DeleteToken(baseURL string) error {
	host, err := hostKey(baseURL)
	if err != nil {
		return err
	}
	path, err := filePath()
	if err != nil {
		return err
	}
	tf, err := load(path)
	if err != nil {
		return err
	}
	if _, ok := tf.Tokens[host]; !ok {
		return nil
	}
	delete(tf.Tokens, host)
	return save(path, tf)
}

func hostKey(baseURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return "", fmt.Errorf("secrets: parse %q: %w", baseURL, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("secrets: %q has no host", baseURL)
	}
	return strings.ToLower(u.Host), nil
}

func filePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "ghbrowse")
	if err := os.MkdirAll(dir, 0o700); err != nil { // restrict directory
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

func load(path string) (tokenFile, error) {
	var tf tokenFile
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return tokenFile{}, nil
		}
		return tf, err
	}
	if err := json.Unmarshal(data, &tf); err != nil {
		return tf, fmt.Errorf("secrets: parse %s: %w", path, err)
	}
	return tf, nil
}

func save(path string, tf tokenFile) error {
	data, err := json.MarshalIndent(tf, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func masterKey() []byte {
	base := fmt.Sprintf("ghbrowse-%s-%s", runtime.GOOS, os.Getenv("USER"))
	hash := sha256.Sum256([]byte(base))
	return hash[:]
}

func newGCM() (cipher.AEAD, error) {
	block, err := aes.NewCipher(masterKey())
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

func encrypt(plain []byte) ([]byte, error) {
	gcm, err := newGCM()
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plain, nil), nil
}

func decrypt(ciphertext []byte) ([]byte, error) {
	gcm, err := newGCM()
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < gcm.NonceSize() {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce := ciphertext[:gcm.NonceSize()]
	body := ciphertext[gcm.NonceSize():]
	return gcm.Open(nil, nonce, body, nil)
}

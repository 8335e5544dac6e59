package commands

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/context"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// authorize returns an HTTP client authorised for the requested scopes, running the OAuth2
// console flow if no stored token is found.
func authorize(credentials string, scopes []string, tokens string) (*http.Client, error) {
	config, err := readCredentials(credentials, scopes)
	if err != nil {
		return nil, err
	}

	file := tokenFile(credentials, tokens)

	token, err := tokenFromFile(file)
	if err != nil {
		if token, err = getTokenFromWeb(config); err != nil {
			return nil, err
		}

		if err := saveToken(file, token); err != nil {
			return nil, err
		}
	}

	return config.Client(context.Background(), token), nil
}

// authenticate runs the OAuth2 console flow unconditionally, replacing any stored token.
func authenticate(credentials string, scopes []string, tokens string) error {
	config, err := readCredentials(credentials, scopes)
	if err != nil {
		return err
	}

	token, err := getTokenFromWeb(config)
	if err != nil {
		return err
	}

	file := tokenFile(credentials, tokens)
	if err := saveToken(file, token); err != nil {
		return err
	}

	infof("Stored OAuth2 token in file %s", file)

	return nil
}

func readCredentials(credentials string, scopes []string) (*oauth2.Config, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, err
	}

	return google.ConfigFromJSON(b, scopes...)
}

func tokenFile(credentials, tokens string) string {
	_, file := filepath.Split(credentials)
	name := strings.TrimSuffix(file, filepath.Ext(file))

	return filepath.Join(tokens, fmt.Sprintf("%s.forms", name))
}

// Requests a token from the web, then returns the retrieved token.
func getTokenFromWeb(config *oauth2.Config) (*oauth2.Token, error) {
	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Go to the following link in your browser then type the "+
		"authorization code: \n%v\n", authURL)

	var authCode string
	if _, err := fmt.Scan(&authCode); err != nil {
		return nil, fmt.Errorf("unable to read authorization code (%v)", err)
	}

	token, err := config.Exchange(context.TODO(), authCode)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve token from web (%v)", err)
	}

	return token, nil
}

// Retrieves a token from a local file.
func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	token := oauth2.Token{}
	if err := json.NewDecoder(f).Decode(&token); err != nil {
		return nil, err
	}

	return &token, nil
}

// Saves a token to a file path.
func saveToken(path string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache oauth token (%v)", err)
	}

	defer f.Close()

	return json.NewEncoder(f).Encode(token)
}

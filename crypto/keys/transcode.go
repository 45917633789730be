package keys

// TranscodePrivate re-serializes a private key between containers and
// formats without changing the key material. Identity transcoding is
// allowed and normalizes the serialization.
func TranscodePrivate(family Family, fromContainer Container, fromFormat Format, toContainer Container, toFormat Format, data []byte) ([]byte, error) {
	key, err := ImportPrivate(family, fromContainer, fromFormat, data)
	if err != nil {
		return nil, err
	}
	defer key.Destroy()

	return key.Export(toContainer, toFormat)
}

// TranscodePublic re-serializes a public key between containers and formats.
func TranscodePublic(family Family, fromContainer Container, fromFormat Format, toContainer Container, toFormat Format, data []byte) ([]byte, error) {
	key, err := ImportPublic(family, fromContainer, fromFormat, data)
	if err != nil {
		return nil, err
	}

	return key.Export(toContainer, toFormat)
}

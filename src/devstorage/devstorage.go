package devstorage

import (
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/Tnecniv1/mathbank-sub001/src/logging"
	"github.com/Tnecniv1/mathbank-sub001/src/website"
	"github.com/spf13/cobra"
)

// A tiny S3-compatible server backed by the local filesystem, enough
// for the storage client to upload and fetch PDFs during development.
func init() {
	devStorageCommand := &cobra.Command{
		Use:   "devstorage [storage folder]",
		Short: "Run a local s3-compatible server that stores in the filesystem",
		Run: func(cmd *cobra.Command, args []string) {
			targetFolder := "./tmp"
			if len(args) > 0 {
				targetFolder = args[0]
			}
			err := os.MkdirAll(targetFolder, fs.ModePerm)
			if err != nil {
				panic(err)
			}

			handler := func(w http.ResponseWriter, r *http.Request) {
				bucket, key := bucketKey(r)

				switch r.Method {
				case http.MethodPut:
					bodyBytes, err := io.ReadAll(r.Body)
					if err != nil {
						panic(err)
					}
					logging.Info().Str("bucket", bucket).Str("key", key).Int("len", len(bodyBytes)).Msg("PUT")

					w.Header().Set("Location", fmt.Sprintf("/%s", bucket))
					err = os.MkdirAll(fmt.Sprintf("%s/%s", targetFolder, bucket), fs.ModePerm)
					if err != nil {
						panic(err)
					}
					if key != "" {
						err = os.WriteFile(fmt.Sprintf("%s/%s/%s", targetFolder, bucket, key), bodyBytes, fs.ModePerm)
						if err != nil {
							panic(err)
						}
					}
				case http.MethodGet:
					logging.Info().Str("bucket", bucket).Str("key", key).Msg("GET")
					fileBytes, err := os.ReadFile(fmt.Sprintf("%s/%s/%s", targetFolder, bucket, key))
					if err != nil {
						w.WriteHeader(http.StatusNotFound)
						return
					}
					w.Write(fileBytes)
				default:
					w.WriteHeader(http.StatusMethodNotAllowed)
				}
			}

			addr := ":9003"
			logging.Info().Str("addr", addr).Str("folder", targetFolder).Msg("Serving local storage")
			err = http.ListenAndServe(addr, http.HandlerFunc(handler))
			logging.Fatal().Err(err).Msg("Local storage server shut down")
		},
	}

	website.WebsiteCommand.AddCommand(devStorageCommand)
}

// Path-style requests only: /bucket/key/with/slashes. Keys keep their
// slashes flattened so everything stays one file per object.
func bucketKey(r *http.Request) (string, string) {
	slashIdx := strings.IndexByte(r.URL.Path[1:], '/')
	if slashIdx == -1 {
		return r.URL.Path[1:], ""
	}
	return r.URL.Path[1 : 1+slashIdx], strings.Replace(r.URL.Path[2+slashIdx:], "/", "~", -1)
}

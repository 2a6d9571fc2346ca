package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	_ "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"

	"denku.com/billing/repository"
	utils "denku.com/billing/utils"
)

// audit rows older than this are bundled to S3 and removed from the hot table
const auditRetentionDays = 30

const auditArchiveBatch = 5000

// cron tab to archive old audit events to S3
func ArchiveAuditEvents() error {
	db, err := utils.GetDBConnection()
	if err != nil {
		return err
	}

	settings, err := utils.GetSettingsFromAPI()
	if err != nil {
		utils.Log(logrus.ErrorLevel, "could not fetch storage settings\r\n")
		utils.Log(logrus.ErrorLevel, err.Error())
		return err
	}

	auditRepo := repository.NewAuditRepository(db)

	cutoff := time.Now().AddDate(0, 0, -auditRetentionDays)
	events, err := auditRepo.ListOlderThan(cutoff, auditArchiveBatch)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		utils.Log(logrus.InfoLevel, "no audit events to archive\r\n")
		return nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, event := range events {
		if err := enc.Encode(event); err != nil {
			return err
		}
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(settings.GetAWSRegion()),
		Credentials: credentials.NewStaticCredentials(
			settings.Credentials["aws_access_key_id"],
			settings.Credentials["aws_secret_access_key"], ""),
	})
	if err != nil {
		return err
	}

	key := fmt.Sprintf("audit/%s.jsonl", time.Now().Format("2006-01-02T15-04-05"))
	uploader := s3manager.NewUploader(sess)
	_, err = uploader.Upload(&s3manager.UploadInput{
		Bucket: aws.String(settings.GetS3Bucket()),
		Key:    aws.String(key),
		Body:   bytes.NewReader(buf.Bytes()),
	})
	if err != nil {
		utils.Log(logrus.ErrorLevel, "error uploading audit archive\r\n")
		utils.Log(logrus.ErrorLevel, err.Error())
		return err
	}

	removed, err := auditRepo.DeleteArchived(cutoff, events[len(events)-1].Id)
	if err != nil {
		return err
	}
	utils.Log(logrus.InfoLevel, fmt.Sprintf("archived %d audit events to %s, removed %d rows\r\n", len(events), key, removed))
	return nil
}

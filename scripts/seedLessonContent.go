package main

// Markdown bodies for the seeded lessons.

const lessonWhatIsCybersecurity = `# What is Cybersecurity?

Cybersecurity is the practice of protecting critical systems and sensitive information from digital attacks. Measures are designed to combat threats against networked systems and applications, whether those threats originate from inside or outside of an organization.

## Common Cybersecurity Threats

1. **Malware** - Software designed to damage or gain unauthorized access to computer systems
2. **Phishing** - Fraudulent attempts to obtain sensitive information
3. **Social Engineering** - Psychological manipulation to gain access to systems
4. **Ransomware** - Malicious software that encrypts data and demands payment
5. **Data Breaches** - Unauthorized access to confidential information

## The CIA Triad

The foundation of cybersecurity is built on three key principles:

- **Confidentiality**: Ensuring information is accessible only to authorized users
- **Integrity**: Maintaining the accuracy and completeness of data
- **Availability**: Ensuring systems and data are accessible when needed`

const lessonTypesOfThreats = `# Types of Cyber Threats

Understanding different types of cyber threats is crucial for effective defense.

## External Threats

- **Cybercriminals**: Motivated by financial gain
- **Nation-state actors**: Government-sponsored attacks
- **Hacktivists**: Ideologically motivated attackers

## Internal Threats

- **Malicious insiders**: Employees with harmful intent
- **Negligent insiders**: Employees who accidentally cause breaches
- **Compromised insiders**: Employees whose accounts have been hijacked

## Impact

Attacks cause direct monetary losses, business disruption, recovery expenses and regulatory fines, along with lasting damage to customer trust.`

const lessonStrongPasswords = `# Creating Strong Passwords

A strong password is your first line of defense against unauthorized access.

## What Makes a Password Strong

- Length matters more than complexity: prefer long passphrases
- Avoid dictionary words, names, and dates
- Never reuse a password across accounts
- Use a password manager to generate and store unique passwords

## What to Avoid

- Sequential characters (123456, qwerty)
- Personal information anyone could look up
- Sharing passwords over email or chat`

const lessonMFA = `# Multi-Factor Authentication

Multi-factor authentication (MFA) requires two or more verification factors to gain access to an account.

## The Three Factors

1. **Something you know** - a password or PIN
2. **Something you have** - a phone, hardware token, or smart card
3. **Something you are** - a fingerprint or face scan

## Why MFA Matters

Even a strong password can be stolen. With MFA enabled, a stolen password alone is not enough to compromise the account. Enable MFA on every account that supports it, starting with email and banking.`

const lessonPhishing = `# Recognizing Phishing Emails

Phishing is the most common entry point for attackers. Learning to spot a phishing email protects you and your organization.

## Warning Signs

- Urgent or threatening language pressuring immediate action
- Sender address that does not match the claimed organization
- Unexpected attachments or links
- Requests for credentials, payment details, or personal data
- Generic greetings like "Dear Customer"

## What To Do

If an email looks suspicious, do not click its links or open attachments. Report it to your security team and delete it. When in doubt, contact the claimed sender through a channel you already trust.`

const lessonSensitiveData = `# Handling Sensitive Data

Every employee handles data that attackers would pay for. Treat it accordingly.

## Classifying Data

- **Public**: Safe to share outside the organization
- **Internal**: For employees only
- **Confidential**: Restricted to specific roles, such as customer records
- **Regulated**: Data covered by law, such as health or payment information

## Safe Handling Rules

- Store sensitive data only in approved systems
- Never send confidential data over personal email
- Encrypt data before transferring it externally
- Shred physical documents and wipe devices before disposal
- Report suspected data exposure immediately`
